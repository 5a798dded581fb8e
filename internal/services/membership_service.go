package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"herhzzz/internal/models/db_models"
	"herhzzz/internal/models/response_models"
	"herhzzz/internal/repositories"
	"herhzzz/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MembershipServiceInterface interface {
	ApplyPaidOrder(ctx context.Context, order *db_models.Order) (*db_models.UserMembership, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*response_models.MembershipStatusResponse, error)
}

type MembershipService struct {
	membershipRepo repositories.MembershipRepository
}

func NewMembershipService(membershipRepo repositories.MembershipRepository) MembershipServiceInterface {
	return &MembershipService{membershipRepo: membershipRepo}
}

// IsMembershipValid reports whether a membership currently grants paid
// access: lifetime members always, otherwise a future expiry. Pure, safe to
// call on every request.
func IsMembershipValid(m *db_models.UserMembership, now time.Time) bool {
	if m == nil {
		return false
	}
	if m.IsLifetimeMember {
		return true
	}
	return m.MembershipExpiresAt != nil && *m.MembershipExpiresAt > now.Unix()
}

// NextExpiry computes the renewal expiry: a still-running membership stacks
// the new duration on top of its current expiry, an expired or absent one
// restarts from now.
func NextExpiry(currentExpiry *int64, now time.Time, durationDays int) int64 {
	base := now
	if currentExpiry != nil && *currentExpiry > now.Unix() {
		base = time.Unix(*currentExpiry, 0)
	}
	return base.AddDate(0, 0, durationDays).Unix()
}

// ApplyPaidOrder folds one paid subscription order into the user's
// membership row. It must be called exactly once per pending→paid
// transition; the order repository's compare-and-swap guarantees duplicate
// notifications never reach this path twice.
func (s *MembershipService) ApplyPaidOrder(ctx context.Context, order *db_models.Order) (*db_models.UserMembership, error) {
	current, err := s.membershipRepo.FindByUserID(ctx, order.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	membership := &db_models.UserMembership{UserID: order.UserID}
	if current != nil {
		membership = current
	}

	if order.SubscriptionType == PlanLifetime {
		membership.IsLifetimeMember = true
		membership.MembershipExpiresAt = nil
	} else {
		expiry := NextExpiry(membership.MembershipExpiresAt, now, order.DurationDays)
		membership.MembershipExpiresAt = &expiry
	}

	membership.MembershipType = order.SubscriptionType
	if membership.MembershipStartedAt == nil {
		started := now.Unix()
		membership.MembershipStartedAt = &started
	}
	orderID := order.ID
	membership.LastSubscriptionOrderID = &orderID

	// audit trail of the order that produced the current state
	if audit, err := json.Marshal(map[string]interface{}{
		"last_out_trade_no": order.OutTradeNo,
		"last_plan":         order.SubscriptionType,
		"applied_at":        now.Unix(),
	}); err == nil {
		membership.Metadata = datatypes.JSON(audit)
	}

	if err := s.membershipRepo.Upsert(ctx, membership); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("membership updated for user %s: type=%s lifetime=%t",
		order.UserID, membership.MembershipType, membership.IsLifetimeMember)
	return membership, nil
}

func (s *MembershipService) GetStatus(ctx context.Context, userID uuid.UUID) (*response_models.MembershipStatusResponse, error) {
	membership, err := s.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildMembershipStatus(userID, membership), nil
}

func buildMembershipStatus(userID uuid.UUID, m *db_models.UserMembership) *response_models.MembershipStatusResponse {
	now := time.Now()
	status := &response_models.MembershipStatusResponse{
		UserID:         userID,
		MembershipType: "free",
	}
	if m == nil {
		return status
	}

	status.IsMember = IsMembershipValid(m, now)
	status.IsLifetimeMember = m.IsLifetimeMember
	if status.IsMember {
		status.MembershipType = m.MembershipType
	}
	if m.MembershipExpiresAt != nil {
		status.MembershipExpiresAt = utils.FormatRFC3339CST(utils.FromUnixSecondsCST(*m.MembershipExpiresAt))
		if remaining := *m.MembershipExpiresAt - now.Unix(); remaining > 0 {
			status.DaysRemaining = int(remaining / 86400)
		}
	}
	return status
}
