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

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(goalService services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (gh *GoalHandler) Create(c *gin.Context) {
	var req services.GoalCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	goal, err := gh.goalService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, goal)
}

func (gh *GoalHandler) Get(c *gin.Context) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid goal id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	goal, err := gh.goalService.GetByID(c.Request.Context(), userID, goalID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goal)
}

func (gh *GoalHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	goals, err := gh.goalService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goals)
}

func (gh *GoalHandler) Update(c *gin.Context) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid goal id"))
		return
	}
	var req services.GoalUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	goal, err := gh.goalService.Update(c.Request.Context(), userID, goalID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goal)
}

func (gh *GoalHandler) Delete(c *gin.Context) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid goal id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := gh.goalService.Delete(c.Request.Context(), userID, goalID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
