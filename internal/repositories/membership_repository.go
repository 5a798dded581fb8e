package repositories

import (
	"context"
	"errors"

	"herhzzz/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserMembership, error)
	Upsert(ctx context.Context, membership *db_models.UserMembership) error
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (m *membershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserMembership, error) {
	var membership db_models.UserMembership
	err := m.db.WithContext(ctx).First(&membership, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

// Upsert keys on user_id: one membership row per user, created on the first
// successful subscription order and rewritten on every renewal.
func (m *membershipRepository) Upsert(ctx context.Context, membership *db_models.UserMembership) error {
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"membership_type",
				"is_lifetime_member",
				"membership_started_at",
				"membership_expires_at",
				"last_subscription_order_id",
				"metadata",
				"updated_at",
			}),
		}).
		Create(membership).Error
}
