package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/requestdata"
	"github.com/BG-legacy/TimeWell/internal/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(coachService services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

func (ch *CoachHandler) Ask(c *gin.Context) {
	var req struct {
		Prompt     string `json:"prompt"`
		VoiceStyle string `json:"voice_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	reply, err := ch.coachService.Ask(c.Request.Context(), userID, req.Prompt, req.VoiceStyle)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reply)
}

func (ch *CoachHandler) Feedback(c *gin.Context) {
	var req struct {
		Area       string `json:"area"`
		Suggestion string `json:"suggestion"`
		VoiceStyle string `json:"voice_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	reply, err := ch.coachService.Feedback(c.Request.Context(), userID, req.Area, req.Suggestion, req.VoiceStyle)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reply)
}

func (ch *CoachHandler) Encourage(c *gin.Context) {
	var req struct {
		Achievement string `json:"achievement"`
		VoiceStyle  string `json:"voice_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	reply, err := ch.coachService.Encourage(c.Request.Context(), userID, req.Achievement, req.VoiceStyle)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reply)
}

func (ch *CoachHandler) WeeklyReview(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	reply, err := ch.coachService.WeeklyReview(c.Request.Context(), userID, c.Query("voice_style"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reply)
}
