package controllers

import (
	"net/http"

	"herhzzz/internal/services"
	"herhzzz/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AudioController struct {
	audioAccessService services.AudioAccessServiceInterface
}

func NewAudioController(audioAccessService services.AudioAccessServiceInterface) *AudioController {
	return &AudioController{
		audioAccessService: audioAccessService,
	}
}

// ListAccess godoc
// @Summary List audio tracks with the caller's per-track access flags
// @Tags Audio
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/audio/access [get]
func (a *AudioController) ListAccess(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in")
		return
	}

	access, err := a.audioAccessService.ListAccess(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, access, "")
}

// CheckAccess godoc
// @Summary Check whether the caller may play one audio track
// @Tags Audio
// @Produce json
// @Param name path string true "Track name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/audio/{name}/access [get]
func (a *AudioController) CheckAccess(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in")
		return
	}

	trackName := c.Param("name")
	hasAccess, err := a.audioAccessService.CheckAccess(c.Request.Context(), userID, trackName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"audio_name": trackName,
		"has_access": hasAccess,
	}, "")
}
