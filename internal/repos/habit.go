package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type HabitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error)
	GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*types.Habit, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Habit, error)
	Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error)
	Delete(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error
}

type habitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHabitRepo(db *gorm.DB, baseLog *logger.Logger) HabitRepo {
	repoLog := baseLog.With("repo", "HabitRepo")
	return &habitRepo{db: db, log: repoLog}
}

func (hr *habitRepo) Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Create(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

func (hr *habitRepo) GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var result types.Habit
	if err := transaction.WithContext(ctx).
		Where("id = ?", habitID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (hr *habitRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.Habit
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *habitRepo) Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

func (hr *habitRepo) Delete(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", habitID).
		Delete(&types.Habit{}).Error
}
