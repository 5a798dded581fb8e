package services

import (
	"context"
	"testing"
	"time"

	"herhzzz/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNextExpiry_StacksOnFutureExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// 30 days left on a yearly plan
	current := now.AddDate(0, 0, 30).Unix()

	got := NextExpiry(&current, now, 90)

	want := time.Unix(current, 0).AddDate(0, 0, 90).Unix()
	assert.Equal(t, want, got, "renewal must extend the existing expiry, not restart from now")
}

func TestNextExpiry_RestartsFromNowWhenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, 0, -10).Unix()

	got := NextExpiry(&expired, now, 90)

	assert.Equal(t, now.AddDate(0, 0, 90).Unix(), got)
}

func TestNextExpiry_RestartsFromNowWhenNil(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := NextExpiry(nil, now, 365)

	assert.Equal(t, now.AddDate(0, 0, 365).Unix(), got)
}

func TestIsMembershipValid(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour).Unix()
	past := now.Add(-24 * time.Hour).Unix()

	assert.False(t, IsMembershipValid(nil, now))
	assert.False(t, IsMembershipValid(&db_models.UserMembership{}, now))
	assert.False(t, IsMembershipValid(&db_models.UserMembership{MembershipExpiresAt: &past}, now))
	assert.True(t, IsMembershipValid(&db_models.UserMembership{MembershipExpiresAt: &future}, now))
	// lifetime trumps any expiry state
	assert.True(t, IsMembershipValid(&db_models.UserMembership{IsLifetimeMember: true}, now))
	assert.True(t, IsMembershipValid(&db_models.UserMembership{IsLifetimeMember: true, MembershipExpiresAt: &past}, now))
}

type fakeMembershipRepo struct {
	stored *db_models.UserMembership
}

func (f *fakeMembershipRepo) FindByUserID(_ context.Context, _ uuid.UUID) (*db_models.UserMembership, error) {
	return f.stored, nil
}

func (f *fakeMembershipRepo) Upsert(_ context.Context, m *db_models.UserMembership) error {
	f.stored = m
	return nil
}

func TestApplyPaidOrder_FirstYearlyPurchase(t *testing.T) {
	repo := &fakeMembershipRepo{}
	svc := NewMembershipService(repo)

	userID := uuid.New()
	order := &db_models.Order{
		OutTradeNo:       "20250601-120000-AAAAAA",
		UserID:           userID,
		OrderType:        db_models.OrderTypeSubscription,
		SubscriptionType: PlanYearly,
		DurationDays:     365,
	}
	order.ID = uuid.New()

	before := time.Now()
	membership, err := svc.ApplyPaidOrder(context.Background(), order)
	after := time.Now()

	assert.NoError(t, err)
	assert.False(t, membership.IsLifetimeMember)
	assert.Equal(t, PlanYearly, membership.MembershipType)
	assert.NotNil(t, membership.MembershipStartedAt)
	assert.Equal(t, order.ID, *membership.LastSubscriptionOrderID)
	assert.Contains(t, string(membership.Metadata), order.OutTradeNo, "audit record names the producing order")
	assert.Contains(t, string(membership.Metadata), PlanYearly)

	lo := before.AddDate(0, 0, 365).Unix()
	hi := after.AddDate(0, 0, 365).Unix()
	assert.GreaterOrEqual(t, *membership.MembershipExpiresAt, lo)
	assert.LessOrEqual(t, *membership.MembershipExpiresAt, hi)
}

func TestApplyPaidOrder_RenewalStacks(t *testing.T) {
	userID := uuid.New()
	started := time.Now().AddDate(0, 0, -335).Unix()
	// 30 days remain on the original yearly plan
	existingExpiry := time.Now().AddDate(0, 0, 30).Unix()
	repo := &fakeMembershipRepo{stored: &db_models.UserMembership{
		UserID:              userID,
		MembershipType:      PlanYearly,
		MembershipStartedAt: &started,
		MembershipExpiresAt: &existingExpiry,
	}}
	svc := NewMembershipService(repo)

	order := &db_models.Order{
		UserID:           userID,
		OrderType:        db_models.OrderTypeSubscription,
		SubscriptionType: PlanMonthly3,
		DurationDays:     90,
	}
	order.ID = uuid.New()

	membership, err := svc.ApplyPaidOrder(context.Background(), order)

	assert.NoError(t, err)
	want := time.Unix(existingExpiry, 0).AddDate(0, 0, 90).Unix()
	assert.Equal(t, want, *membership.MembershipExpiresAt, "renewal stacks past the original expiry")
	assert.Equal(t, PlanMonthly3, membership.MembershipType)
	assert.Equal(t, started, *membership.MembershipStartedAt, "started_at is set once and preserved")
}

func TestApplyPaidOrder_LifetimeClearsExpiry(t *testing.T) {
	userID := uuid.New()
	existingExpiry := time.Now().AddDate(0, 0, 30).Unix()
	repo := &fakeMembershipRepo{stored: &db_models.UserMembership{
		UserID:              userID,
		MembershipType:      PlanYearly,
		MembershipExpiresAt: &existingExpiry,
	}}
	svc := NewMembershipService(repo)

	order := &db_models.Order{
		UserID:           userID,
		OrderType:        db_models.OrderTypeSubscription,
		SubscriptionType: PlanLifetime,
		DurationDays:     0,
	}
	order.ID = uuid.New()

	membership, err := svc.ApplyPaidOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.True(t, membership.IsLifetimeMember)
	assert.Nil(t, membership.MembershipExpiresAt)
	assert.True(t, IsMembershipValid(membership, time.Now().AddDate(50, 0, 0)))
}
