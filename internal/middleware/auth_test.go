package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/requestdata"
	"github.com/BG-legacy/TimeWell/internal/types"
)

type fakeAuthService struct {
	validToken string
	userID     uuid.UUID
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	return user, nil
}

func (f *fakeAuthService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func (f *fakeAuthService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func (f *fakeAuthService) LogoutUser(ctx context.Context) error { return nil }

func (f *fakeAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString != f.validToken {
		return nil, errors.New("invalid token")
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		UserID:      f.userID,
		TokenString: tokenString,
	}), nil
}

func (f *fakeAuthService) GetAccessTTL() time.Duration { return time.Hour }

func newAuthTestRouter(t *testing.T, auth *fakeAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	am := NewAuthMiddleware(log, auth)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(am.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": requestdata.UserID(c.Request.Context())})
	})
	return r
}

func TestRequireAuthRejectsMissingAndBadTokens(t *testing.T) {
	r := newAuthTestRouter(t, &fakeAuthService{validToken: "good", userID: uuid.New()})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"bad token", "Bearer bogus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			var env struct {
				Error struct {
					Message string `json:"message"`
					Code    string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if env.Error.Message != "missing or invalid token" {
				t.Fatalf("message = %q", env.Error.Message)
			}
		})
	}
}

func TestRequireAuthAttachesRequestData(t *testing.T) {
	userID := uuid.New()
	r := newAuthTestRouter(t, &fakeAuthService{validToken: "good", userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
	var resp struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != userID {
		t.Fatalf("user id = %s, want %s", resp.UserID, userID)
	}
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
	userID := uuid.New()
	r := newAuthTestRouter(t, &fakeAuthService{validToken: "good", userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/whoami?token=good", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
}
