package response_models

import "github.com/google/uuid"

type ProfileResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
