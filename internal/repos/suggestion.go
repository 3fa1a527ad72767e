package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type SuggestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, suggestion *types.Suggestion) (*types.Suggestion, error)
	GetByID(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) (*types.Suggestion, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Suggestion, error)
	ListByEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.Suggestion, error)
	Update(ctx context.Context, tx *gorm.DB, suggestion *types.Suggestion) (*types.Suggestion, error)
	Delete(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error
}

type suggestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSuggestionRepo(db *gorm.DB, baseLog *logger.Logger) SuggestionRepo {
	repoLog := baseLog.With("repo", "SuggestionRepo")
	return &suggestionRepo{db: db, log: repoLog}
}

func (sr *suggestionRepo) Create(ctx context.Context, tx *gorm.DB, suggestion *types.Suggestion) (*types.Suggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(suggestion).Error; err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (sr *suggestionRepo) GetByID(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) (*types.Suggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Suggestion
	if err := transaction.WithContext(ctx).
		Where("id = ?", suggestionID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByUser returns the user's suggestions newest first.
func (sr *suggestionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Suggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Suggestion
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByEvent returns every analysis record for one event, newest first.
// Repeated analyses accumulate rather than overwrite.
func (sr *suggestionRepo) ListByEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.Suggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Suggestion
	if err := transaction.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *suggestionRepo) Update(ctx context.Context, tx *gorm.DB, suggestion *types.Suggestion) (*types.Suggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Save(suggestion).Error; err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (sr *suggestionRepo) Delete(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", suggestionID).
		Delete(&types.Suggestion{}).Error
}
