package voice

import (
	"strings"
	"testing"
)

func TestFallbackMessageTotal(t *testing.T) {
	for _, info := range Styles() {
		style := Style(info.Key)
		for _, uc := range UseCases() {
			if msg := FallbackMessage(style, uc); msg == "" {
				t.Fatalf("empty fallback for style=%q use_case=%q", style, uc)
			}
		}
	}
}

func TestFallbackMessageUnknownInputs(t *testing.T) {
	if msg := FallbackMessage(Style("nonsense"), UseAnalysis); msg == "" {
		t.Fatal("unknown style should fall back to default style bank")
	}
	if msg := FallbackMessage(Supportive, UseCase("nonsense")); msg == "" {
		t.Fatal("unknown use case should fall back to general bank")
	}
}

func TestFallbackMessageWithContext(t *testing.T) {
	msg := FallbackMessageWithContext(Supportive, UseAnalysis, "Morning run")
	if !strings.HasPrefix(msg, "Regarding 'Morning run': ") {
		t.Fatalf("message not prefixed with subject: %q", msg)
	}

	plain := FallbackMessageWithContext(Supportive, UseAnalysis, "")
	if strings.HasPrefix(plain, "Regarding") {
		t.Fatalf("empty subject should not add a prefix: %q", plain)
	}
}
