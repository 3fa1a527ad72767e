package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type EventCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	GoalID      *uuid.UUID `json:"goal_id"`
}

type EventUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	GoalID      *uuid.UUID `json:"goal_id"`
	IsCompleted *bool      `json:"is_completed"`
}

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, input EventCreate) (*types.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*types.Event, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, input EventUpdate) (*types.Event, error)
	Complete(ctx context.Context, userID, eventID uuid.UUID) (*types.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

type eventService struct {
	log       *logger.Logger
	eventRepo repos.EventRepo
	goalRepo  repos.GoalRepo
}

func NewEventService(baseLog *logger.Logger, eventRepo repos.EventRepo, goalRepo repos.GoalRepo) EventService {
	return &eventService{
		log:       baseLog.With("service", "EventService"),
		eventRepo: eventRepo,
		goalRepo:  goalRepo,
	}
}

func (es *eventService) Create(ctx context.Context, userID uuid.UUID, input EventCreate) (*types.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.InvalidRequest(errors.New("title is required"))
	}
	if input.StartTime.IsZero() {
		return nil, apierr.InvalidRequest(errors.New("start_time is required"))
	}
	if input.GoalID != nil {
		if err := es.checkGoalOwnership(ctx, userID, *input.GoalID); err != nil {
			return nil, err
		}
	}
	event := &types.Event{
		ID:          uuid.New(),
		UserID:      userID,
		GoalID:      input.GoalID,
		Title:       title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	return es.eventRepo.Create(ctx, nil, event)
}

func (es *eventService) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*types.Event, error) {
	return es.getOwned(ctx, userID, eventID)
}

func (es *eventService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Event, error) {
	return es.eventRepo.ListByUser(ctx, nil, userID)
}

func (es *eventService) Update(ctx context.Context, userID, eventID uuid.UUID, input EventUpdate) (*types.Event, error) {
	event, err := es.getOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apierr.InvalidRequest(errors.New("title cannot be empty"))
		}
		event.Title = title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}
	if input.GoalID != nil {
		if err := es.checkGoalOwnership(ctx, userID, *input.GoalID); err != nil {
			return nil, err
		}
		event.GoalID = input.GoalID
	}
	if input.IsCompleted != nil {
		event.IsCompleted = *input.IsCompleted
	}
	return es.eventRepo.Update(ctx, nil, event)
}

// Complete is idempotent; completing a completed event is a no-op.
func (es *eventService) Complete(ctx context.Context, userID, eventID uuid.UUID) (*types.Event, error) {
	event, err := es.getOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsCompleted {
		return event, nil
	}
	event.IsCompleted = true
	return es.eventRepo.Update(ctx, nil, event)
}

func (es *eventService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := es.getOwned(ctx, userID, eventID); err != nil {
		return err
	}
	return es.eventRepo.Delete(ctx, nil, eventID)
}

func (es *eventService) getOwned(ctx context.Context, userID, eventID uuid.UUID) (*types.Event, error) {
	event, err := es.eventRepo.GetByID(ctx, nil, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("event %s not found", eventID))
		}
		return nil, err
	}
	if event.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("event %s does not belong to user", eventID))
	}
	return event, nil
}

func (es *eventService) checkGoalOwnership(ctx context.Context, userID, goalID uuid.UUID) error {
	goal, err := es.goalRepo.GetByID(ctx, nil, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.InvalidRequest(fmt.Errorf("goal %s not found", goalID))
		}
		return err
	}
	if goal.UserID != userID {
		return apierr.Forbidden(fmt.Errorf("goal %s does not belong to user", goalID))
	}
	return nil
}
