package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
)

// SuggestionService manages the lifecycle of persisted suggestions. Creation
// happens in the analysis pipeline; this service covers retrieval and the
// apply/unapply transitions.
type SuggestionService interface {
	GetByID(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Suggestion, error)
	ListByEvent(ctx context.Context, userID, eventID uuid.UUID) ([]*types.Suggestion, error)
	Apply(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error)
	Unapply(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error)
}

type suggestionService struct {
	log            *logger.Logger
	suggestionRepo repos.SuggestionRepo
	eventRepo      repos.EventRepo
	notifier       redisclient.Notifier
}

func NewSuggestionService(
	baseLog *logger.Logger,
	suggestionRepo repos.SuggestionRepo,
	eventRepo repos.EventRepo,
	notifier redisclient.Notifier,
) SuggestionService {
	return &suggestionService{
		log:            baseLog.With("service", "SuggestionService"),
		suggestionRepo: suggestionRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
	}
}

func (s *suggestionService) GetByID(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error) {
	return s.getOwned(ctx, userID, suggestionID)
}

func (s *suggestionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Suggestion, error) {
	return s.suggestionRepo.ListByUser(ctx, nil, userID)
}

func (s *suggestionService) ListByEvent(ctx context.Context, userID, eventID uuid.UUID) ([]*types.Suggestion, error) {
	event, err := s.eventRepo.GetByID(ctx, nil, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("event %s not found", eventID))
		}
		return nil, err
	}
	if event.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("event %s does not belong to user", eventID))
	}
	return s.suggestionRepo.ListByEvent(ctx, nil, eventID)
}

// Apply marks a suggestion as acted on. Applying an already-applied
// suggestion is a no-op, not an error.
func (s *suggestionService) Apply(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error) {
	return s.setApplied(ctx, userID, suggestionID, true)
}

// Unapply reverses Apply and is equally idempotent.
func (s *suggestionService) Unapply(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error) {
	return s.setApplied(ctx, userID, suggestionID, false)
}

func (s *suggestionService) setApplied(ctx context.Context, userID, suggestionID uuid.UUID, applied bool) (*types.Suggestion, error) {
	suggestion, err := s.getOwned(ctx, userID, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion.IsApplied == applied {
		return suggestion, nil
	}
	suggestion.IsApplied = applied
	if _, err := s.suggestionRepo.Update(ctx, nil, suggestion); err != nil {
		return nil, err
	}

	kind := redisclient.EventSuggestionApplied
	if !applied {
		kind = redisclient.EventSuggestionUnapplied
	}
	if err := s.notifier.Publish(ctx, redisclient.SuggestionEvent{
		Kind:         kind,
		SuggestionID: suggestion.ID.String(),
		UserID:       userID.String(),
		EventID:      suggestion.EventID.String(),
	}); err != nil {
		s.log.Warn("Failed to publish suggestion event", "error", err)
	}

	return suggestion, nil
}

func (s *suggestionService) getOwned(ctx context.Context, userID, suggestionID uuid.UUID) (*types.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, nil, suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("suggestion %s not found", suggestionID))
		}
		return nil, err
	}
	if suggestion.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("suggestion %s does not belong to user", suggestionID))
	}
	return suggestion, nil
}
