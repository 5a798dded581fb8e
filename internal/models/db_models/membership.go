package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserMembership is the single row per user describing their paid window.
// A lifetime member stays valid with a nil expiry; a nil expiry without the
// lifetime flag means no active membership.
type UserMembership struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	MembershipType   string `gorm:"size:32"` // last plan type applied
	IsLifetimeMember bool   `gorm:"default:false"`

	// Unix seconds. StartedAt is set once on first activation and preserved
	// across renewals.
	MembershipStartedAt *int64
	MembershipExpiresAt *int64

	// Audit pointer to the order that produced the current state.
	LastSubscriptionOrderID *uuid.UUID `gorm:"type:uuid"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:UserID"`
}
