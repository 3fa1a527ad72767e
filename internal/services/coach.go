package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/types"
	"github.com/BG-legacy/TimeWell/internal/voice"
)

const coachSchemaName = "coach_message"

// CoachReply is a free-form coaching response. Model is "fallback" when the
// text came from the canned banks rather than the provider.
type CoachReply struct {
	Text       string `json:"text"`
	VoiceStyle string `json:"voice_style"`
	Model      string `json:"model"`
	Fallback   bool   `json:"fallback"`
}

// CoachService answers ad-hoc coaching questions and generates weekly
// reviews. Like the analysis pipeline, it degrades to canned voice-matched
// messages instead of erroring when the provider is down.
type CoachService interface {
	Ask(ctx context.Context, userID uuid.UUID, prompt, requestedStyle string) (*CoachReply, error)
	WeeklyReview(ctx context.Context, userID uuid.UUID, requestedStyle string) (*CoachReply, error)
	Feedback(ctx context.Context, userID uuid.UUID, area, suggestion, requestedStyle string) (*CoachReply, error)
	Encourage(ctx context.Context, userID uuid.UUID, achievement, requestedStyle string) (*CoachReply, error)
}

type coachService struct {
	log       *logger.Logger
	client    OpenAIClient
	modelName string
	prefsRepo repos.UserPreferencesRepo
	eventRepo repos.EventRepo
	goalRepo  repos.GoalRepo
}

func NewCoachService(
	baseLog *logger.Logger,
	client OpenAIClient,
	prefsRepo repos.UserPreferencesRepo,
	eventRepo repos.EventRepo,
	goalRepo repos.GoalRepo,
) CoachService {
	return &coachService{
		log:       baseLog.With("service", "CoachService"),
		client:    client,
		modelName: "openai",
		prefsRepo: prefsRepo,
		eventRepo: eventRepo,
		goalRepo:  goalRepo,
	}
}

func coachSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The coaching message, written in the persona's voice.",
			},
		},
		"required":             []string{"message"},
		"additionalProperties": false,
	}
}

func (cs *coachService) Ask(ctx context.Context, userID uuid.UUID, prompt, requestedStyle string) (*CoachReply, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, apierr.InvalidRequest(errors.New("prompt is required"))
	}
	style, err := cs.resolveStyle(ctx, userID, requestedStyle)
	if err != nil {
		return nil, err
	}

	system := style.Description() + "\n\nYou are a time management coach. Answer the user's question helpfully and in character."
	reply, err := cs.generate(ctx, system, prompt, style)
	if err != nil {
		cs.log.Warn("Coach generation failed, using fallback", "error", err)
		return cs.fallbackReply(style, classifyUseCase(prompt), prompt), nil
	}
	return reply, nil
}

func (cs *coachService) WeeklyReview(ctx context.Context, userID uuid.UUID, requestedStyle string) (*CoachReply, error) {
	style, err := cs.resolveStyle(ctx, userID, requestedStyle)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var (
		events []*types.Event
		goals  []*types.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = cs.eventRepo.ListByUserBetween(gctx, nil, userID, now.AddDate(0, 0, -7), now)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = cs.goalRepo.ListByUser(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prompt := renderWeeklyReviewPrompt(events, goals)
	system := style.Description() + "\n\nYou are a time management coach preparing a weekly review. Be specific about the user's week and in character."
	reply, err := cs.generate(ctx, system, prompt, style)
	if err != nil {
		cs.log.Warn("Weekly review generation failed, using fallback", "error", err)
		return cs.fallbackReply(style, voice.UseWeeklyReview, ""), nil
	}
	return reply, nil
}

// Feedback and Encourage are static generators: templated per-style text with
// the caller's subject spliced in, no model call. Empty fields get the stock
// subjects so the reply always reads as a complete sentence.

func (cs *coachService) Feedback(ctx context.Context, userID uuid.UUID, area, suggestion, requestedStyle string) (*CoachReply, error) {
	style, err := cs.resolveStyle(ctx, userID, requestedStyle)
	if err != nil {
		return nil, err
	}
	area = strings.TrimSpace(area)
	if area == "" {
		area = "your routine"
	}
	suggestion = strings.TrimSpace(suggestion)
	if suggestion == "" {
		suggestion = "make some adjustments"
	}
	return &CoachReply{
		Text:       voice.FeedbackText(style, area, suggestion),
		VoiceStyle: string(style),
		Model:      "static",
		Fallback:   false,
	}, nil
}

func (cs *coachService) Encourage(ctx context.Context, userID uuid.UUID, achievement, requestedStyle string) (*CoachReply, error) {
	style, err := cs.resolveStyle(ctx, userID, requestedStyle)
	if err != nil {
		return nil, err
	}
	achievement = strings.TrimSpace(achievement)
	if achievement == "" {
		achievement = "your progress"
	}
	return &CoachReply{
		Text:       voice.EncouragementText(style, achievement),
		VoiceStyle: string(style),
		Model:      "static",
		Fallback:   false,
	}, nil
}

func (cs *coachService) generate(ctx context.Context, system, user string, style voice.Style) (*CoachReply, error) {
	raw, err := cs.client.GenerateJSON(ctx, system, user, coachSchemaName, coachSchema())
	if err != nil {
		return nil, err
	}
	msg, _ := raw["message"].(string)
	if msg == "" {
		return nil, fmt.Errorf("%w: empty coach message", ErrSchemaMismatch)
	}
	return &CoachReply{
		Text:       msg,
		VoiceStyle: string(style),
		Model:      cs.modelName,
		Fallback:   false,
	}, nil
}

func (cs *coachService) fallbackReply(style voice.Style, useCase voice.UseCase, prompt string) *CoachReply {
	text := voice.FallbackMessage(style, useCase)
	if prompt != "" {
		preview := prompt
		if len(preview) > 50 {
			preview = preview[:50] + "..."
		}
		text = fmt.Sprintf("Regarding '%s': %s", preview, text)
	}
	return &CoachReply{
		Text:       text,
		VoiceStyle: string(style),
		Model:      "fallback",
		Fallback:   true,
	}
}

func (cs *coachService) resolveStyle(ctx context.Context, userID uuid.UUID, requested string) (voice.Style, error) {
	if requested != "" {
		style, err := voice.Parse(requested)
		if err != nil {
			return "", apierr.InvalidVoiceStyle(err)
		}
		return style, nil
	}
	prefs, err := cs.prefsRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			cs.log.Warn("Failed to load user preferences, using default voice", "user_id", userID.String(), "error", err)
		}
		return voice.DefaultStyle, nil
	}
	if style, err := voice.Parse(prefs.CoachVoice); err == nil {
		return style, nil
	}
	return voice.DefaultStyle, nil
}

// classifyUseCase picks the fallback bank from keywords in the prompt.
func classifyUseCase(prompt string) voice.UseCase {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "analyze") || strings.Contains(p, "assessment"):
		return voice.UseAnalysis
	case strings.Contains(p, "suggest") || strings.Contains(p, "advice"):
		return voice.UseSuggestion
	case strings.Contains(p, "plan") || strings.Contains(p, "action"):
		return voice.UseActionPlan
	case strings.Contains(p, "review") || strings.Contains(p, "week"):
		return voice.UseWeeklyReview
	case strings.Contains(p, "feedback"):
		return voice.UseFeedback
	case strings.Contains(p, "encourage") || strings.Contains(p, "motivat"):
		return voice.UseEncouragement
	default:
		return voice.UseGeneral
	}
}

func renderWeeklyReviewPrompt(events []*types.Event, goals []*types.Goal) string {
	var b strings.Builder
	b.WriteString("Please provide a weekly review for this user based on their activity:\n\n")
	b.WriteString("EVENTS THIS WEEK:\n")
	if len(events) == 0 {
		b.WriteString("No events recorded this week.\n")
	} else {
		for _, e := range events {
			fmt.Fprintf(&b, "- %s: %s\n", e.Title, e.Description)
		}
	}
	b.WriteString("\nACTIVE GOALS:\n")
	if len(goals) == 0 {
		b.WriteString("No active goals.\n")
	} else {
		for _, g := range goals {
			fmt.Fprintf(&b, "- %s: %s\n", g.Title, g.Description)
		}
	}
	b.WriteString("\nPlease include:\n")
	b.WriteString("1. A summary of their week\n")
	b.WriteString("2. Patterns or insights from their time use\n")
	b.WriteString("3. How their activities align with their goals\n")
	b.WriteString("4. Encouragement and suggestions for the coming week\n")
	return b.String()
}
