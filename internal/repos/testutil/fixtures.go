package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BG-legacy/TimeWell/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Username: email,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string) *types.Goal {
	tb.Helper()
	g := &types.Goal{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string) *types.Event {
	tb.Helper()
	e := &types.Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		StartTime: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return e
}

func SeedSuggestion(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, eventID uuid.UUID, score int) *types.Suggestion {
	tb.Helper()
	s := &types.Suggestion{
		ID:           uuid.New(),
		UserID:       userID,
		EventID:      eventID,
		Score:        score,
		AlignedGoals: datatypes.JSON([]byte("[]")),
		Analysis:     "analysis",
		Suggestion:   "suggestion",
		VoiceStyle:   "supportive",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed suggestion: %v", err)
	}
	return s
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
