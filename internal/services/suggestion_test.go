package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type suggestionFixture struct {
	svc         SuggestionService
	suggestions *fakeSuggestionRepo
	events      *fakeEventRepo
	notifier    *fakeNotifier
}

func newSuggestionFixture(t *testing.T) *suggestionFixture {
	t.Helper()
	f := &suggestionFixture{
		suggestions: newFakeSuggestionRepo(),
		events:      newFakeEventRepo(),
		notifier:    &fakeNotifier{},
	}
	f.svc = NewSuggestionService(testLogger(t), f.suggestions, f.events, f.notifier)
	return f
}

func (f *suggestionFixture) seedSuggestion(t *testing.T, userID, eventID uuid.UUID) *types.Suggestion {
	t.Helper()
	s := &types.Suggestion{
		UserID:       userID,
		EventID:      eventID,
		Score:        7,
		AlignedGoals: datatypes.JSON([]byte("[]")),
		Analysis:     "a",
		Suggestion:   "s",
		VoiceStyle:   "supportive",
	}
	if _, err := f.suggestions.Create(context.Background(), nil, s); err != nil {
		t.Fatalf("seed suggestion: %v", err)
	}
	return s
}

func TestSuggestionGetByIDOwnership(t *testing.T) {
	f := newSuggestionFixture(t)
	owner := uuid.New()
	s := f.seedSuggestion(t, owner, uuid.New())

	got, err := f.svc.GetByID(context.Background(), owner, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != s.ID {
		t.Fatalf("GetByID: got %v", got.ID)
	}

	if _, err := f.svc.GetByID(context.Background(), uuid.New(), s.ID); !apierr.HasCode(err, apierr.CodeForbidden) {
		t.Fatalf("error = %v, want forbidden", err)
	}
	if _, err := f.svc.GetByID(context.Background(), owner, uuid.New()); !apierr.HasCode(err, apierr.CodeNotFound) {
		t.Fatalf("error = %v, want not_found", err)
	}
}

func TestSuggestionApplyIdempotent(t *testing.T) {
	f := newSuggestionFixture(t)
	owner := uuid.New()
	s := f.seedSuggestion(t, owner, uuid.New())

	got, err := f.svc.Apply(context.Background(), owner, s.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !got.IsApplied {
		t.Fatal("Apply: is_applied not set")
	}
	if len(f.notifier.published) != 1 || f.notifier.published[0].Kind != redisclient.EventSuggestionApplied {
		t.Fatalf("expected one applied publish, got %v", f.notifier.published)
	}

	// Second apply is a no-op and publishes nothing.
	got, err = f.svc.Apply(context.Background(), owner, s.ID)
	if err != nil {
		t.Fatalf("Apply (repeat): %v", err)
	}
	if !got.IsApplied {
		t.Fatal("Apply (repeat): is_applied flipped")
	}
	if len(f.notifier.published) != 1 {
		t.Fatalf("repeat apply must not publish again, got %d events", len(f.notifier.published))
	}
}

func TestSuggestionUnapplyIdempotent(t *testing.T) {
	f := newSuggestionFixture(t)
	owner := uuid.New()
	s := f.seedSuggestion(t, owner, uuid.New())

	// Unapply on a never-applied suggestion is a no-op.
	got, err := f.svc.Unapply(context.Background(), owner, s.ID)
	if err != nil {
		t.Fatalf("Unapply: %v", err)
	}
	if got.IsApplied {
		t.Fatal("Unapply: unexpected applied state")
	}
	if len(f.notifier.published) != 0 {
		t.Fatal("no-op unapply must not publish")
	}

	if _, err := f.svc.Apply(context.Background(), owner, s.ID); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err = f.svc.Unapply(context.Background(), owner, s.ID)
	if err != nil {
		t.Fatalf("Unapply after apply: %v", err)
	}
	if got.IsApplied {
		t.Fatal("Unapply after apply: still applied")
	}
}

func TestSuggestionApplyOwnership(t *testing.T) {
	f := newSuggestionFixture(t)
	s := f.seedSuggestion(t, uuid.New(), uuid.New())

	if _, err := f.svc.Apply(context.Background(), uuid.New(), s.ID); !apierr.HasCode(err, apierr.CodeForbidden) {
		t.Fatalf("error = %v, want forbidden", err)
	}
}

func TestSuggestionListByEvent(t *testing.T) {
	f := newSuggestionFixture(t)
	owner := uuid.New()
	event := &types.Event{ID: uuid.New(), UserID: owner, Title: "e"}
	if _, err := f.events.Create(context.Background(), nil, event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	f.seedSuggestion(t, owner, event.ID)
	f.seedSuggestion(t, owner, event.ID)

	list, err := f.svc.ListByEvent(context.Background(), owner, event.ID)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByEvent: got %d, want 2", len(list))
	}

	if _, err := f.svc.ListByEvent(context.Background(), uuid.New(), event.ID); !apierr.HasCode(err, apierr.CodeForbidden) {
		t.Fatalf("error = %v, want forbidden", err)
	}
	if _, err := f.svc.ListByEvent(context.Background(), owner, uuid.New()); !apierr.HasCode(err, apierr.CodeNotFound) {
		t.Fatalf("error = %v, want not_found", err)
	}
}
