package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the per-locale user-facing messages shown in banners and
// form errors. Raw backend errors never reach the user; they are logged and
// replaced with catalog text.
type Catalog struct {
	fallback string
	messages map[string]map[string]string
}

// Load reads a YAML catalog keyed locale -> message key -> text.
func Load(path, fallback string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}
	if _, ok := messages[fallback]; !ok {
		return nil, fmt.Errorf("message catalog has no %q locale", fallback)
	}
	return &Catalog{fallback: fallback, messages: messages}, nil
}

// Default returns the built-in English catalog used when no file is
// configured, mainly by tests and the helper CLI.
func Default() *Catalog {
	return &Catalog{
		fallback: "en",
		messages: map[string]map[string]string{
			"en": {
				"errors.generic":    "Something went wrong. Please try again.",
				"errors.not_found":  "The requested item could not be found.",
				"errors.validation": "Please correct the highlighted fields.",
				"errors.no_token":   "Your session has expired. Please sign in again.",
			},
		},
	}
}

// T resolves key in locale, falling back to the default locale, then to the
// key itself so a missing entry is visible instead of blank.
func (c *Catalog) T(locale, key string) string {
	if msgs, ok := c.messages[locale]; ok {
		if text, ok := msgs[key]; ok {
			return text
		}
	}
	if msgs, ok := c.messages[c.fallback]; ok {
		if text, ok := msgs[key]; ok {
			return text
		}
	}
	return key
}
