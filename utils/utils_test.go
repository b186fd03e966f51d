package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang-jwt/jwt"
)

func TestRenderMarkdownPreview_AppliesWrapWidth(t *testing.T) {
	t.Parallel()

	markdown := "This is a sentence with enough words to require wrapping when rendered into a preview panel."

	const previewWidth = 20

	rendered := RenderMarkdownPreview(markdown, previewWidth, "dracula")

	wrapWidth := previewWidth - previewHorizontalSpace
	for i, line := range strings.Split(rendered, "\n") {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == "" {
			continue
		}

		if width := lipgloss.Width(trimmed); width > wrapWidth {
			t.Fatalf("line %d exceeds wrap width: got %d, want <= %d: %q", i, width, wrapWidth, trimmed)
		}
	}
}

func TestGetClaims_RoundTrip(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "me@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := GetClaims(signed, secret)
	if err != nil {
		t.Fatalf("GetClaims failed: %v", err)
	}
	if claims["email"] != "me@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

func TestGetClaims_RejectsBadSignature(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "me@example.com"})
	signed, err := token.SignedString([]byte("right-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := GetClaims(signed, "wrong-secret"); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	valid := []string{"Personal", "work-notes", "Q3 Planning", "a_b"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Fatalf("expected %q valid, got %v", name, err)
		}
	}

	invalid := []string{"", "   ", "notes/2026", "a;b"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Fatalf("expected %q rejected", name)
		}
	}
}
