package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type UserPreferencesRepo interface {
	Create(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error)
	Update(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error)
}

type userPreferencesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferencesRepo {
	repoLog := baseLog.With("repo", "UserPreferencesRepo")
	return &userPreferencesRepo{db: db, log: repoLog}
}

func (pr *userPreferencesRepo) Create(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

func (pr *userPreferencesRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.UserPreferences
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *userPreferencesRepo) Update(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
