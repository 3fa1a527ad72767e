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

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (eh *EventHandler) Create(c *gin.Context) {
	var req services.EventCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	event, err := eh.eventService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, event)
}

func (eh *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	event, err := eh.eventService.GetByID(c.Request.Context(), userID, eventID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	events, err := eh.eventService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, events)
}

func (eh *EventHandler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event id"))
		return
	}
	var req services.EventUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid request body"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	event, err := eh.eventService.Update(c.Request.Context(), userID, eventID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) Complete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	event, err := eh.eventService.Complete(c.Request.Context(), userID, eventID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("invalid event id"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := eh.eventService.Delete(c.Request.Context(), userID, eventID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
