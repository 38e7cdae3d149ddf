package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/response"
)

// VoiceHandler relays voice announcements to the agent's TTS sub-service.
type VoiceHandler struct {
	voice ports.VoiceGateway
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(voice ports.VoiceGateway) *VoiceHandler {
	return &VoiceHandler{voice: voice}
}

// Announce handles POST /api/voice.
func (h *VoiceHandler) Announce(c *gin.Context) {
	var req domain.VoiceAnnouncement
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.voice.Announce(c.Request.Context(), req)
	if err != nil {
		response.Error(c, apperror.ErrVoiceUnavailable(err))
		return
	}
	response.Relay(c, result.Status, result.Body)
}

// Status handles GET /api/voice.
func (h *VoiceHandler) Status(c *gin.Context) {
	result, err := h.voice.Status(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrVoiceUnavailable(err))
		return
	}
	response.Relay(c, result.Status, result.Body)
}
