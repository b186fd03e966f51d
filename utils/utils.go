package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/golang-jwt/jwt"
	"github.com/muesli/termenv"
)

const (
	previewHorizontalSpace = 4
	defaultWrapWidth       = 100
)

// RenderMarkdownPreview renders note content for the preview pane. The
// style name comes from the resolved theme palette.
func RenderMarkdownPreview(content string, width int, style string) string {
	wrapWidth := width - previewHorizontalSpace
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrapWidth),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	markdown, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown" // Displayed in Preview Pane
	}

	return markdown
}

// GetClaims decodes the host-issued session token so account details can be
// shown without a round trip.
func GetClaims(token, secret string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}

// ValidateName checks user-supplied workspace and note names.
func ValidateName(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !isValidName(input) {
		return fmt.Errorf(
			"invalid name '%s': Name must only contain alphanumeric characters, spaces, hyphens, and underscores",
			input,
		)
	}
	return nil
}

func isValidName(input string) bool {
	return regexp.MustCompile(`^[a-zA-Z0-9-_ ]+$`).MatchString(input)
}
