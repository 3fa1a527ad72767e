package repos

import (
	"context"
	"testing"
	"time"

	"github.com/BG-legacy/TimeWell/internal/repos/testutil"
)

func TestSuggestionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewSuggestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "suggestionrepo@example.com")
	event := testutil.SeedEvent(t, ctx, tx, user.ID, "Morning run")

	first := testutil.SeedSuggestion(t, ctx, tx, user.ID, event.ID, 7)
	time.Sleep(10 * time.Millisecond)
	second := testutil.SeedSuggestion(t, ctx, tx, user.ID, event.ID, 5)

	got, err := repo.GetByID(ctx, tx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Score != 7 {
		t.Fatalf("GetByID: score = %d, want 7", got.Score)
	}

	byUser, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("ListByUser: expected 2 records, got %d", len(byUser))
	}
	if byUser[0].ID != second.ID {
		t.Fatalf("ListByUser: expected newest first, got %v first", byUser[0].ID)
	}

	byEvent, err := repo.ListByEvent(ctx, tx, event.ID)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(byEvent) != 2 {
		t.Fatalf("ListByEvent: expected 2 records (repeat analyses accumulate), got %d", len(byEvent))
	}
	if byEvent[0].ID != second.ID {
		t.Fatalf("ListByEvent: expected newest first, got %v first", byEvent[0].ID)
	}

	first.IsApplied = true
	if _, err := repo.Update(ctx, tx, first); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, first.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if !got.IsApplied {
		t.Fatalf("Update: is_applied not persisted")
	}

	if err := repo.Delete(ctx, tx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tx, first.ID); err == nil {
		t.Fatalf("GetByID after delete: expected error")
	}
}

func TestSuggestionAlignedGoalsRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewSuggestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "alignedgoals@example.com")
	event := testutil.SeedEvent(t, ctx, tx, user.ID, "Deep work block")

	s := testutil.SeedSuggestion(t, ctx, tx, user.ID, event.ID, 8)
	if err := s.SetAlignedGoals([]string{"goal-1", "goal-2"}); err != nil {
		t.Fatalf("SetAlignedGoals: %v", err)
	}
	if _, err := repo.Update(ctx, tx, s); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	ids := got.AlignedGoalIDs()
	if len(ids) != 2 || ids[0] != "goal-1" || ids[1] != "goal-2" {
		t.Fatalf("AlignedGoalIDs: unexpected result: %v", ids)
	}
}
