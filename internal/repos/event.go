package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error)
	GetByID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (*types.Event, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Event, error)
	ListByUserBetween(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.Event, error)
	Update(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error)
	Delete(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: db, log: repoLog}
}

func (er *eventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (er *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var result types.Event
	if err := transaction.WithContext(ctx).
		Where("id = ?", eventID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (er *eventRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Event
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *eventRepo) ListByUserBetween(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Event
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, from, to).
		Order("start_time ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *eventRepo) Update(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (er *eventRepo) Delete(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", eventID).
		Delete(&types.Event{}).Error
}
