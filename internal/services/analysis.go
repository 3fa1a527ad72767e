package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
	"github.com/BG-legacy/TimeWell/internal/voice"
)

// AnalysisService runs the goal-alignment pipeline: load the event and the
// user's goals, render a voice-styled prompt, call the model, and persist
// the outcome as a Suggestion. Provider failures never surface to callers;
// they produce a fallback record instead.
type AnalysisService interface {
	AnalyzeEvent(ctx context.Context, userID, eventID uuid.UUID, requestedStyle string) (*types.Suggestion, error)
}

type analysisService struct {
	log            *logger.Logger
	client         OpenAIClient
	eventRepo      repos.EventRepo
	goalRepo       repos.GoalRepo
	prefsRepo      repos.UserPreferencesRepo
	suggestionRepo repos.SuggestionRepo
	notifier       redisclient.Notifier
}

func NewAnalysisService(
	baseLog *logger.Logger,
	client OpenAIClient,
	eventRepo repos.EventRepo,
	goalRepo repos.GoalRepo,
	prefsRepo repos.UserPreferencesRepo,
	suggestionRepo repos.SuggestionRepo,
	notifier redisclient.Notifier,
) AnalysisService {
	return &analysisService{
		log:            baseLog.With("service", "AnalysisService"),
		client:         client,
		eventRepo:      eventRepo,
		goalRepo:       goalRepo,
		prefsRepo:      prefsRepo,
		suggestionRepo: suggestionRepo,
		notifier:       notifier,
	}
}

func (s *analysisService) AnalyzeEvent(ctx context.Context, userID, eventID uuid.UUID, requestedStyle string) (*types.Suggestion, error) {
	style, err := s.resolveStyle(ctx, userID, requestedStyle)
	if err != nil {
		return nil, err
	}

	var (
		event *types.Event
		goals []*types.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.eventRepo.GetByID(gctx, nil, eventID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound(fmt.Errorf("event %s not found", eventID))
		}
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListByUser(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if event.UserID != userID {
		return nil, apierr.Forbidden(fmt.Errorf("event %s does not belong to user", eventID))
	}

	result := s.runAlignment(ctx, style, event, goals)

	suggestion := &types.Suggestion{
		UserID:            userID,
		EventID:           eventID,
		Score:             result.Score,
		Analysis:          result.Analysis,
		Suggestion:        result.Suggestion,
		NewGoalSuggestion: result.NewGoalSuggestion,
		VoiceStyle:        string(style),
		Fallback:          result.Fallback,
	}
	if err := suggestion.SetAlignedGoals(result.AlignedGoals); err != nil {
		return nil, err
	}
	if _, err := s.suggestionRepo.Create(ctx, nil, suggestion); err != nil {
		return nil, err
	}

	if err := s.notifier.Publish(ctx, redisclient.SuggestionEvent{
		Kind:         redisclient.EventSuggestionCreated,
		SuggestionID: suggestion.ID.String(),
		UserID:       userID.String(),
		EventID:      eventID.String(),
		Fallback:     suggestion.Fallback,
	}); err != nil {
		s.log.Warn("Failed to publish suggestion event", "error", err)
	}

	return suggestion, nil
}

// resolveStyle applies the precedence: explicit request, then stored
// preference, then the default. An invalid explicit style is the caller's
// mistake and is rejected; an invalid stored preference is our data problem
// and degrades to the default.
func (s *analysisService) resolveStyle(ctx context.Context, userID uuid.UUID, requested string) (voice.Style, error) {
	if requested != "" {
		style, err := voice.Parse(requested)
		if err != nil {
			return "", apierr.InvalidVoiceStyle(err)
		}
		return style, nil
	}

	prefs, err := s.prefsRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("Failed to load user preferences, using default voice", "user_id", userID.String(), "error", err)
		}
		return voice.DefaultStyle, nil
	}
	style, err := voice.Parse(prefs.CoachVoice)
	if err != nil {
		s.log.Warn("Stored coach voice is unknown, using default", "user_id", userID.String(), "coach_voice", prefs.CoachVoice)
		return voice.DefaultStyle, nil
	}
	return style, nil
}

// runAlignment asks the model to score the event and synthesizes a fallback
// result when the call or the payload fails. A fallback scores 5, aligns no
// goals, and proposes no new goal.
func (s *analysisService) runAlignment(ctx context.Context, style voice.Style, event *types.Event, goals []*types.Goal) AlignmentResult {
	system := RenderAlignmentSystemPrompt(style)
	user := RenderAlignmentUserPrompt(event, goals)

	raw, err := s.client.GenerateJSON(ctx, system, user, AlignmentSchemaName, AlignmentSchema())
	if err != nil {
		switch {
		case errors.Is(err, ErrSchemaMismatch):
			s.log.Warn("Model output did not match schema, using fallback", "event_id", event.ID.String(), "error", err)
		default:
			s.log.Warn("Model provider unavailable, using fallback", "event_id", event.ID.String(), "error", err)
		}
		return s.fallbackResult(style, event)
	}

	result, err := parseAlignment(raw)
	if err != nil {
		s.log.Warn("Model output failed validation, using fallback", "event_id", event.ID.String(), "error", err)
		return s.fallbackResult(style, event)
	}
	return result
}

func (s *analysisService) fallbackResult(style voice.Style, event *types.Event) AlignmentResult {
	return AlignmentResult{
		Score:             5,
		AlignedGoals:      []string{},
		Analysis:          voice.FallbackMessageWithContext(style, voice.UseAnalysis, event.Title),
		Suggestion:        voice.FallbackMessage(style, voice.UseSuggestion),
		NewGoalSuggestion: nil,
		Fallback:          true,
	}
}

func parseAlignment(raw map[string]any) (AlignmentResult, error) {
	var result AlignmentResult
	buf, err := json.Marshal(raw)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(buf, &result); err != nil {
		return result, err
	}
	if result.Score < 1 || result.Score > 10 {
		return result, fmt.Errorf("score %d out of range", result.Score)
	}
	if result.Analysis == "" {
		return result, errors.New("missing analysis")
	}
	if result.Suggestion == "" {
		return result, errors.New("missing suggestion")
	}
	if result.AlignedGoals == nil {
		result.AlignedGoals = []string{}
	}
	if result.NewGoalSuggestion != nil && *result.NewGoalSuggestion == "" {
		result.NewGoalSuggestion = nil
	}
	result.Fallback = false
	return result, nil
}
