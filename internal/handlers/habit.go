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

type HabitHandler struct {
	habitService services.HabitService
}

func NewHabitHandler(habitService services.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

func (hh *HabitHandler) Create(c *gin.Context) {
	var req services.HabitCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	habit, err := hh.habitService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, habit)
}

func (hh *HabitHandler) Get(c *gin.Context) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid habit id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	habit, err := hh.habitService.GetByID(c.Request.Context(), userID, habitID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, habit)
}

func (hh *HabitHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	habits, err := hh.habitService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, habits)
}

func (hh *HabitHandler) Update(c *gin.Context) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid habit id"))
		return
	}
	var req services.HabitUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	habit, err := hh.habitService.Update(c.Request.Context(), userID, habitID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, habit)
}

func (hh *HabitHandler) Complete(c *gin.Context) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid habit id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	habit, err := hh.habitService.Complete(c.Request.Context(), userID, habitID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, habit)
}

func (hh *HabitHandler) ResetStreak(c *gin.Context) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid habit id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	habit, err := hh.habitService.ResetStreak(c.Request.Context(), userID, habitID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, habit)
}

func (hh *HabitHandler) Delete(c *gin.Context) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid habit id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := hh.habitService.Delete(c.Request.Context(), userID, habitID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
