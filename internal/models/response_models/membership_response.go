package response_models

import "github.com/google/uuid"

type MembershipStatusResponse struct {
	UserID              uuid.UUID `json:"user_id"`
	IsMember            bool      `json:"is_member"`
	MembershipType      string    `json:"membership_type"`
	IsLifetimeMember    bool      `json:"is_lifetime_member"`
	MembershipExpiresAt string    `json:"membership_expires_at,omitempty"`
	DaysRemaining       int       `json:"days_remaining"`
}

type TrackAccess struct {
	Name        string `json:"name"`
	CyclePhase  string `json:"cycle_phase"`
	AccessLevel string `json:"access_level"`
	HasAccess   bool   `json:"has_access"`
}

type AudioAccessResponse struct {
	Tracks     []TrackAccess            `json:"tracks"`
	Membership MembershipStatusResponse `json:"membership"`
}
