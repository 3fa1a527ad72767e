package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/types"
	"github.com/BG-legacy/TimeWell/internal/voice"
)

type analysisFixture struct {
	svc         AnalysisService
	events      *fakeEventRepo
	goals       *fakeGoalRepo
	prefs       *fakePrefsRepo
	suggestions *fakeSuggestionRepo
	client      *fakeModelClient
	notifier    *fakeNotifier
}

func newAnalysisFixture(t *testing.T) *analysisFixture {
	t.Helper()
	f := &analysisFixture{
		events:      newFakeEventRepo(),
		goals:       newFakeGoalRepo(),
		prefs:       newFakePrefsRepo(),
		suggestions: newFakeSuggestionRepo(),
		client:      &fakeModelClient{},
		notifier:    &fakeNotifier{},
	}
	f.svc = NewAnalysisService(testLogger(t), f.client, f.events, f.goals, f.prefs, f.suggestions, f.notifier)
	return f
}

func (f *analysisFixture) seedEvent(t *testing.T, userID uuid.UUID, title string) *types.Event {
	t.Helper()
	e := &types.Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		StartTime: time.Now().UTC(),
	}
	if _, err := f.events.Create(context.Background(), nil, e); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}

func goodAlignmentPayload() map[string]any {
	return map[string]any{
		"score":               8,
		"aligned_goals":       []any{"goal-1"},
		"analysis":            "Strong match with your running goal.",
		"suggestion":          "Schedule runs before work for consistency.",
		"new_goal_suggestion": nil,
	}
}

func TestAnalyzeEventSuccess(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.result = goodAlignmentPayload()

	got, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "")
	if err != nil {
		t.Fatalf("AnalyzeEvent: %v", err)
	}
	if got.Score != 8 {
		t.Fatalf("score = %d, want 8", got.Score)
	}
	if got.Fallback {
		t.Fatal("successful analysis must not be marked fallback")
	}
	if got.VoiceStyle != string(voice.DefaultStyle) {
		t.Fatalf("voice style = %q, want default %q", got.VoiceStyle, voice.DefaultStyle)
	}
	if ids := got.AlignedGoalIDs(); len(ids) != 1 || ids[0] != "goal-1" {
		t.Fatalf("aligned goals = %v", ids)
	}
	if len(f.suggestions.suggestions) != 1 {
		t.Fatalf("expected 1 persisted suggestion, got %d", len(f.suggestions.suggestions))
	}
	if len(f.notifier.published) != 1 || f.notifier.published[0].Kind != redisclient.EventSuggestionCreated {
		t.Fatalf("expected suggestion.created publish, got %v", f.notifier.published)
	}
}

func TestAnalyzeEventNotFound(t *testing.T) {
	f := newAnalysisFixture(t)
	_, err := f.svc.AnalyzeEvent(context.Background(), uuid.New(), uuid.New(), "")
	if !apierr.HasCode(err, apierr.CodeNotFound) {
		t.Fatalf("error = %v, want not_found", err)
	}
	if f.client.calls != 0 {
		t.Fatal("model must not be called for a missing event")
	}
	if len(f.suggestions.suggestions) != 0 {
		t.Fatal("no suggestion should be persisted for a missing event")
	}
}

func TestAnalyzeEventForbidden(t *testing.T) {
	f := newAnalysisFixture(t)
	owner := uuid.New()
	event := f.seedEvent(t, owner, "Private event")

	_, err := f.svc.AnalyzeEvent(context.Background(), uuid.New(), event.ID, "")
	if !apierr.HasCode(err, apierr.CodeForbidden) {
		t.Fatalf("error = %v, want forbidden", err)
	}
	if f.client.calls != 0 {
		t.Fatal("model must not be called for someone else's event")
	}
	if len(f.suggestions.suggestions) != 0 {
		t.Fatal("no suggestion should be persisted on forbidden")
	}
}

func TestAnalyzeEventInvalidVoiceStyle(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")

	_, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "sarcastic")
	if !apierr.HasCode(err, apierr.CodeInvalidVoiceStyle) {
		t.Fatalf("error = %v, want invalid_voice_style", err)
	}
	if f.client.calls != 0 {
		t.Fatal("model must not be called with an invalid style")
	}
}

func TestAnalyzeEventVoicePrecedence(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.result = goodAlignmentPayload()

	if _, err := f.prefs.Create(context.Background(), nil, &types.UserPreferences{
		UserID:     userID,
		CoachVoice: "oracle",
	}); err != nil {
		t.Fatalf("seed prefs: %v", err)
	}

	// Stored preference wins when the request names no style.
	got, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "")
	if err != nil {
		t.Fatalf("AnalyzeEvent: %v", err)
	}
	if got.VoiceStyle != "oracle" {
		t.Fatalf("voice style = %q, want oracle", got.VoiceStyle)
	}

	// An explicit request overrides the stored preference.
	got, err = f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "direct")
	if err != nil {
		t.Fatalf("AnalyzeEvent: %v", err)
	}
	if got.VoiceStyle != "direct" {
		t.Fatalf("voice style = %q, want direct", got.VoiceStyle)
	}
}

func TestAnalyzeEventUnknownStoredVoiceFallsBack(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.result = goodAlignmentPayload()

	if _, err := f.prefs.Create(context.Background(), nil, &types.UserPreferences{
		UserID:     userID,
		CoachVoice: "retired_value",
	}); err != nil {
		t.Fatalf("seed prefs: %v", err)
	}

	got, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "")
	if err != nil {
		t.Fatalf("AnalyzeEvent: %v", err)
	}
	if got.VoiceStyle != string(voice.DefaultStyle) {
		t.Fatalf("voice style = %q, want default", got.VoiceStyle)
	}
}

func TestAnalyzeEventProviderDownProducesFallback(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.err = ErrProviderUnavailable

	got, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "")
	if err != nil {
		t.Fatalf("AnalyzeEvent must not fail on provider outage: %v", err)
	}
	if !got.Fallback {
		t.Fatal("expected fallback record")
	}
	if got.Score != 5 {
		t.Fatalf("fallback score = %d, want 5", got.Score)
	}
	if ids := got.AlignedGoalIDs(); len(ids) != 0 {
		t.Fatalf("fallback aligned goals = %v, want empty", ids)
	}
	if got.NewGoalSuggestion != nil {
		t.Fatal("fallback must not propose a new goal")
	}
	if !strings.HasPrefix(got.Analysis, "Regarding 'Morning run': ") {
		t.Fatalf("fallback analysis not contextualized: %q", got.Analysis)
	}
	if got.Suggestion == "" {
		t.Fatal("fallback suggestion must not be empty")
	}
	if len(f.suggestions.suggestions) != 1 {
		t.Fatal("fallback record must still be persisted")
	}
}

func TestAnalyzeEventMalformedModelOutputProducesFallback(t *testing.T) {
	cases := []struct {
		name   string
		result map[string]any
	}{
		{"score out of range", map[string]any{
			"score": 0, "aligned_goals": []any{}, "analysis": "a", "suggestion": "s", "new_goal_suggestion": nil,
		}},
		{"score too high", map[string]any{
			"score": 11, "aligned_goals": []any{}, "analysis": "a", "suggestion": "s", "new_goal_suggestion": nil,
		}},
		{"missing analysis", map[string]any{
			"score": 5, "aligned_goals": []any{}, "analysis": "", "suggestion": "s", "new_goal_suggestion": nil,
		}},
		{"wrong types", map[string]any{
			"score": "eight", "aligned_goals": "goal-1", "analysis": "a", "suggestion": "s", "new_goal_suggestion": nil,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAnalysisFixture(t)
			userID := uuid.New()
			event := f.seedEvent(t, userID, "Morning run")
			f.client.result = tc.result

			got, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, "")
			if err != nil {
				t.Fatalf("AnalyzeEvent must not fail on malformed output: %v", err)
			}
			if !got.Fallback {
				t.Fatal("expected fallback record")
			}
		})
	}
}

func TestAnalyzeEventRepeatedRunsAccumulate(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.result = goodAlignmentPayload()

	for i := 0; i < 3; i++ {
		if _, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, ""); err != nil {
			t.Fatalf("AnalyzeEvent run %d: %v", i, err)
		}
	}
	byEvent, err := f.suggestions.ListByEvent(context.Background(), nil, event.ID)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(byEvent) != 3 {
		t.Fatalf("expected 3 accumulated records, got %d", len(byEvent))
	}
}

func TestAnalyzeEventNotifierFailureIsNonFatal(t *testing.T) {
	f := newAnalysisFixture(t)
	userID := uuid.New()
	event := f.seedEvent(t, userID, "Morning run")
	f.client.result = goodAlignmentPayload()
	f.notifier.err = context.DeadlineExceeded

	if _, err := f.svc.AnalyzeEvent(context.Background(), userID, event.ID, ""); err != nil {
		t.Fatalf("AnalyzeEvent must tolerate notifier failure: %v", err)
	}
}
