package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is used when Init was never called.
const DefaultLang = "pl"

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	log       = zerolog.Nop()
)

// SetLogger routes missing-translation warnings to l.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Init loads the embedded locale files and selects lang for T, Td and Tp.
func Init(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}

	b := i18n.NewBundle(language.Polish)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, tag.String())
	current = tag.String()
	return nil
}

// Lang returns the active language tag.
func Lang() string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		_ = Init(DefaultLang)
	}
}

func localize(cfg *i18n.LocalizeConfig) string {
	ensure()
	mu.RLock()
	loc, l := localizer, log
	mu.RUnlock()

	s, err := loc.Localize(cfg)
	if err != nil {
		l.Warn().Err(err).Str("id", cfg.MessageID).Msg("missing translation")
		return cfg.MessageID
	}
	return s
}

// T translates a message by ID.
func T(msgID string) string {
	return localize(&i18n.LocalizeConfig{MessageID: msgID})
}

// Td translates a message by ID with template data.
func Td(msgID string, data map[string]any) string {
	return localize(&i18n.LocalizeConfig{MessageID: msgID, TemplateData: data})
}

// Tp translates a pluralized message by ID.
func Tp(msgID string, count int) string {
	return localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}
