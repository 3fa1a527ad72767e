package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BG-legacy/TimeWell/internal/voice"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthcheck", HealthCheck)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want %q", rec.Body.String(), "ok")
	}
}

func TestListVoiceStyles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/voice-styles", ListVoiceStyles)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/voice-styles", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		VoiceStyles []voice.StyleInfo `json:"voice_styles"`
		Default     string            `json:"default"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.VoiceStyles) != len(voice.Styles()) {
		t.Fatalf("styles = %d, want %d", len(resp.VoiceStyles), len(voice.Styles()))
	}
	if resp.Default != string(voice.DefaultStyle) {
		t.Fatalf("default = %q, want %q", resp.Default, voice.DefaultStyle)
	}
	seen := map[string]bool{}
	for _, s := range resp.VoiceStyles {
		if s.Key == "" || s.Description == "" {
			t.Fatalf("style with empty key or description: %+v", s)
		}
		seen[s.Key] = true
	}
	if !seen[string(voice.DefaultStyle)] {
		t.Fatalf("default style %q missing from listing", voice.DefaultStyle)
	}
}
