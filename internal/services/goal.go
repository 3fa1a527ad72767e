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

type GoalCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
}

type GoalUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	IsCompleted *bool      `json:"is_completed"`
}

type GoalService interface {
	Create(ctx context.Context, userID uuid.UUID, input GoalCreate) (*types.Goal, error)
	GetByID(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error)
	Update(ctx context.Context, userID, goalID uuid.UUID, input GoalUpdate) (*types.Goal, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
}

type goalService struct {
	log      *logger.Logger
	goalRepo repos.GoalRepo
}

func NewGoalService(baseLog *logger.Logger, goalRepo repos.GoalRepo) GoalService {
	return &goalService{
		log:      baseLog.With("service", "GoalService"),
		goalRepo: goalRepo,
	}
}

func (gs *goalService) Create(ctx context.Context, userID uuid.UUID, input GoalCreate) (*types.Goal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.InvalidRequest(errors.New("title is required"))
	}
	goal := &types.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
	}
	return gs.goalRepo.Create(ctx, nil, goal)
}

func (gs *goalService) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error) {
	return gs.getOwned(ctx, userID, goalID)
}

func (gs *goalService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error) {
	return gs.goalRepo.ListByUser(ctx, nil, userID)
}

func (gs *goalService) Update(ctx context.Context, userID, goalID uuid.UUID, input GoalUpdate) (*types.Goal, error) {
	goal, err := gs.getOwned(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apierr.InvalidRequest(errors.New("title cannot be empty"))
		}
		goal.Title = title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.IsCompleted != nil {
		goal.IsCompleted = *input.IsCompleted
	}
	return gs.goalRepo.Update(ctx, nil, goal)
}

func (gs *goalService) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := gs.getOwned(ctx, userID, goalID); err != nil {
		return err
	}
	return gs.goalRepo.Delete(ctx, nil, goalID)
}

func (gs *goalService) getOwned(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error) {
	goal, err := gs.goalRepo.GetByID(ctx, nil, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("goal %s not found", goalID))
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("goal %s does not belong to user", goalID))
	}
	return goal, nil
}
