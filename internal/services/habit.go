package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type HabitCreate struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Frequency   string         `json:"frequency"`
	TargetDays  datatypes.JSON `json:"target_days"`
	Color       string         `json:"color"`
	Icon        string         `json:"icon"`
}

type HabitUpdate struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Frequency   *string         `json:"frequency"`
	TargetDays  *datatypes.JSON `json:"target_days"`
	Color       *string         `json:"color"`
	Icon        *string         `json:"icon"`
	IsActive    *bool           `json:"is_active"`
}

type HabitService interface {
	Create(ctx context.Context, userID uuid.UUID, input HabitCreate) (*types.Habit, error)
	GetByID(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Habit, error)
	Update(ctx context.Context, userID, habitID uuid.UUID, input HabitUpdate) (*types.Habit, error)
	Complete(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error)
	ResetStreak(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error)
	Delete(ctx context.Context, userID, habitID uuid.UUID) error
}

type habitService struct {
	log       *logger.Logger
	habitRepo repos.HabitRepo
}

func NewHabitService(baseLog *logger.Logger, habitRepo repos.HabitRepo) HabitService {
	return &habitService{
		log:       baseLog.With("service", "HabitService"),
		habitRepo: habitRepo,
	}
}

func (hs *habitService) Create(ctx context.Context, userID uuid.UUID, input HabitCreate) (*types.Habit, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.InvalidRequest(errors.New("title is required"))
	}
	frequency := strings.TrimSpace(input.Frequency)
	if frequency == "" {
		frequency = "daily"
	}
	habit := &types.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		Frequency:   frequency,
		TargetDays:  input.TargetDays,
		Color:       input.Color,
		Icon:        input.Icon,
		IsActive:    true,
	}
	return hs.habitRepo.Create(ctx, nil, habit)
}

func (hs *habitService) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error) {
	return hs.getOwned(ctx, userID, habitID)
}

func (hs *habitService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Habit, error) {
	return hs.habitRepo.ListByUser(ctx, nil, userID)
}

func (hs *habitService) Update(ctx context.Context, userID, habitID uuid.UUID, input HabitUpdate) (*types.Habit, error) {
	habit, err := hs.getOwned(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apierr.InvalidRequest(errors.New("title cannot be empty"))
		}
		habit.Title = title
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.Frequency != nil {
		habit.Frequency = *input.Frequency
	}
	if input.TargetDays != nil {
		habit.TargetDays = *input.TargetDays
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.IsActive != nil {
		habit.IsActive = *input.IsActive
	}
	return hs.habitRepo.Update(ctx, nil, habit)
}

// Complete bumps the streak and tracks the longest run seen so far.
func (hs *habitService) Complete(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error) {
	habit, err := hs.getOwned(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	habit.StreakCount++
	if habit.StreakCount > habit.LongestStreak {
		habit.LongestStreak = habit.StreakCount
	}
	return hs.habitRepo.Update(ctx, nil, habit)
}

// ResetStreak zeroes the current run; the longest streak is kept.
func (hs *habitService) ResetStreak(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error) {
	habit, err := hs.getOwned(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	habit.StreakCount = 0
	return hs.habitRepo.Update(ctx, nil, habit)
}

func (hs *habitService) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := hs.getOwned(ctx, userID, habitID); err != nil {
		return err
	}
	return hs.habitRepo.Delete(ctx, nil, habitID)
}

func (hs *habitService) getOwned(ctx context.Context, userID, habitID uuid.UUID) (*types.Habit, error) {
	habit, err := hs.habitRepo.GetByID(ctx, nil, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("habit %s not found", habitID))
		}
		return nil, err
	}
	if habit.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("habit %s does not belong to user", habitID))
	}
	return habit, nil
}
