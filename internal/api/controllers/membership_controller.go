package controllers

import (
	"net/http"

	"herhzzz/internal/services"
	"herhzzz/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService services.MembershipServiceInterface
}

func NewMembershipController(membershipService services.MembershipServiceInterface) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

// GetMembership godoc
// @Summary Get the caller's membership status
// @Tags Membership
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/membership [get]
func (m *MembershipController) GetMembership(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in")
		return
	}

	status, err := m.membershipService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}
