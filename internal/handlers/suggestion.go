package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/requestdata"
	"github.com/BG-legacy/TimeWell/internal/services"
)

type SuggestionHandler struct {
	analysisService   services.AnalysisService
	suggestionService services.SuggestionService
}

func NewSuggestionHandler(analysisService services.AnalysisService, suggestionService services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		analysisService:   analysisService,
		suggestionService: suggestionService,
	}
}

// Analyze runs the goal-alignment pipeline for one event and returns the
// persisted suggestion. The voice_style field is optional; when absent the
// user's stored preference (or the default) applies.
func (sh *SuggestionHandler) Analyze(c *gin.Context) {
	var req struct {
		EventID    string `json:"event_id"`
		VoiceStyle string `json:"voice_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event_id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	suggestion, err := sh.analysisService.AnalyzeEvent(c.Request.Context(), userID, eventID, req.VoiceStyle)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, suggestion)
}

func (sh *SuggestionHandler) Get(c *gin.Context) {
	suggestionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid suggestion id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	suggestion, err := sh.suggestionService.GetByID(c.Request.Context(), userID, suggestionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestion)
}

func (sh *SuggestionHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	suggestions, err := sh.suggestionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestions)
}

func (sh *SuggestionHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	suggestions, err := sh.suggestionService.ListByEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestions)
}

func (sh *SuggestionHandler) Apply(c *gin.Context) {
	suggestionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid suggestion id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	suggestion, err := sh.suggestionService.Apply(c.Request.Context(), userID, suggestionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestion)
}

func (sh *SuggestionHandler) Unapply(c *gin.Context) {
	suggestionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid suggestion id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	suggestion, err := sh.suggestionService.Unapply(c.Request.Context(), userID, suggestionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestion)
}
