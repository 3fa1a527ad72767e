package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
	"github.com/BG-legacy/TimeWell/internal/voice"
)

// PreferencesUpdate carries partial updates; nil fields are left unchanged.
type PreferencesUpdate struct {
	CoachVoice           *string `json:"coach_voice"`
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	DailyReminderTime    *string `json:"daily_reminder_time"`
	WeeklySummaryDay     *int    `json:"weekly_summary_day"`
}

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, update PreferencesUpdate) (*types.UserPreferences, error)
}

type userService struct {
	log       *logger.Logger
	userRepo  repos.UserRepo
	prefsRepo repos.UserPreferencesRepo
}

func NewUserService(baseLog *logger.Logger, userRepo repos.UserRepo, prefsRepo repos.UserPreferencesRepo) UserService {
	return &userService{
		log:       baseLog.With("service", "UserService"),
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
	}
}

func (us *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("user %s not found", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetPreferences lazily creates a default preferences row for accounts that
// predate the preferences table.
func (us *userService) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error) {
	prefs, err := us.prefsRepo.GetByUserID(ctx, nil, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	fresh := &types.UserPreferences{
		ID:         uuid.New(),
		UserID:     userID,
		CoachVoice: string(voice.DefaultStyle),
	}
	return us.prefsRepo.Create(ctx, nil, fresh)
}

func (us *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, update PreferencesUpdate) (*types.UserPreferences, error) {
	prefs, err := us.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.CoachVoice != nil {
		style, err := voice.Parse(*update.CoachVoice)
		if err != nil {
			return nil, apierr.InvalidVoiceStyle(err)
		}
		prefs.CoachVoice = string(style)
	}
	if update.Theme != nil {
		prefs.Theme = *update.Theme
	}
	if update.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.DailyReminderTime != nil {
		prefs.DailyReminderTime = *update.DailyReminderTime
	}
	if update.WeeklySummaryDay != nil {
		day := *update.WeeklySummaryDay
		if day < 0 || day > 6 {
			return nil, apierr.InvalidRequest(fmt.Errorf("weekly_summary_day %d out of range 0-6", day))
		}
		prefs.WeeklySummaryDay = day
	}

	return us.prefsRepo.Update(ctx, nil, prefs)
}
