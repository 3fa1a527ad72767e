package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/BG-legacy/TimeWell/internal/apierr"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/repos/testutil"
	"github.com/BG-legacy/TimeWell/internal/requestdata"
	"github.com/BG-legacy/TimeWell/internal/types"
)

func TestSetContextFromTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, testLogger(t), nil, nil, nil, "test-secret", time.Hour, 24*time.Hour).(*authService)

	user := &types.User{ID: uuid.New(), Email: "token@example.com"}
	tok, err := svc.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatal("no request data in context")
	}
	if rd.UserID != user.ID {
		t.Fatalf("user id = %v, want %v", rd.UserID, user.ID)
	}
	if rd.Email != user.Email {
		t.Fatalf("email = %q, want %q", rd.Email, user.Email)
	}
	if rd.TokenString != tok {
		t.Fatal("token string not carried in request data")
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, testLogger(t), nil, nil, nil, "test-secret", time.Hour, 24*time.Hour)

	if _, err := svc.SetContextFromToken(context.Background(), "not.a.jwt"); !apierr.HasCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("error = %v, want unauthorized", err)
	}

	// Token signed with a different secret must not validate.
	other := NewAuthService(nil, testLogger(t), nil, nil, nil, "other-secret", time.Hour, 24*time.Hour).(*authService)
	tok, err := other.generateAccessToken(&types.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	if _, err := svc.SetContextFromToken(context.Background(), tok); !apierr.HasCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("error = %v, want unauthorized", err)
	}
}

func TestSetContextFromTokenEmptyIsNoop(t *testing.T) {
	svc := NewAuthService(nil, testLogger(t), nil, nil, nil, "test-secret", time.Hour, 24*time.Hour)
	ctx, err := svc.SetContextFromToken(context.Background(), "")
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if rd := requestdata.GetRequestData(ctx); rd != nil {
		t.Fatal("empty token must not attach request data")
	}
}

func TestAuthLifecycle(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	userRepo := repos.NewUserRepo(db, log)
	prefsRepo := repos.NewUserPreferencesRepo(db, log)
	tokenRepo := repos.NewUserTokenRepo(db, log)
	svc := NewAuthService(db, log, userRepo, prefsRepo, tokenRepo, "test-secret", time.Hour, 24*time.Hour)
	ctx := context.Background()

	email := "lifecycle-" + uuid.NewString() + "@example.com"
	user, err := svc.RegisterUser(ctx, &types.User{Email: email, Password: "hunter22"})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&types.UserToken{})
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&types.UserPreferences{})
		db.Unscoped().Where("id = ?", user.ID).Delete(&types.User{})
	})
	if user.Password == "hunter22" {
		t.Fatal("password stored in plaintext")
	}

	// Registration seeds default preferences.
	prefs, err := prefsRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("preferences not created on registration: %v", err)
	}
	if prefs.CoachVoice != "supportive" {
		t.Fatalf("default coach voice = %q, want supportive", prefs.CoachVoice)
	}

	if _, err := svc.RegisterUser(ctx, &types.User{Email: email, Password: "again"}); !apierr.HasCode(err, apierr.CodeConflict) {
		t.Fatalf("duplicate registration error = %v, want conflict", err)
	}

	if _, _, err := svc.LoginUser(ctx, email, "wrong"); !apierr.HasCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("bad password error = %v, want unauthorized", err)
	}

	access, refresh, err := svc.LoginUser(ctx, email, "hunter22")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token pair")
	}

	newAccess, newRefresh, err := svc.RefreshUser(ctx, refresh)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if newAccess == access || newRefresh == refresh {
		t.Fatal("refresh must rotate both tokens")
	}
	if _, _, err := svc.RefreshUser(ctx, refresh); !apierr.HasCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("reused refresh token error = %v, want unauthorized", err)
	}

	authedCtx, err := svc.SetContextFromToken(ctx, newAccess)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if err := svc.LogoutUser(authedCtx); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}
	if _, err := tokenRepo.GetByAccessToken(ctx, nil, newAccess); err == nil {
		t.Fatal("token should be deleted after logout")
	}
}
