// Package i18n renders user-facing messages in the configured language.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"maps"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contactbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Message is a translation key with its template data. Count, when set,
// selects the plural form and is exposed to the template as .Count.
type Message struct {
	ID    string
	Data  map[string]any
	Count *int
}

// NewMessage builds a singular message.
func NewMessage(id string, data map[string]any) Message {
	return Message{ID: id, Data: data}
}

// NewPlural builds a message whose form depends on n.
func NewPlural(id string, n int, data map[string]any) Message {
	return Message{ID: id, Data: data, Count: &n}
}

// Translator resolves message ids against the embedded locale files.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
	lang      string
}

// NewTranslator loads every embedded locale and selects lang.
func NewTranslator(lang string) *Translator {
	t := &Translator{bundle: goi18n.NewBundle(language.English)}
	t.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	t.loadLocales()
	t.SetLanguage(lang)
	return t
}

func (t *Translator) loadLocales() {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := t.bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.languages = append(t.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}
}

// Languages lists the locales that loaded successfully.
func (t *Translator) Languages() []string { return t.languages }

// Language returns the active language tag.
func (t *Translator) Language() string { return t.lang }

// SetLanguage switches the active language. Empty selects the default.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.lang = lang
	t.localizer = goi18n.NewLocalizer(t.bundle, lang)
}

// Msg translates a singular message. Unknown ids are returned verbatim.
func (t *Translator) Msg(id string, data map[string]any) string {
	return t.Localize(NewMessage(id, data))
}

// Plural translates a message in the form matching n.
func (t *Translator) Plural(id string, n int, data map[string]any) string {
	return t.Localize(NewPlural(id, n, data))
}

// Localize renders m.
func (t *Translator) Localize(m Message) string {
	if t.localizer == nil {
		return m.ID
	}
	lc := &goi18n.LocalizeConfig{MessageID: m.ID, TemplateData: m.Data}
	if m.Count != nil {
		data := maps.Clone(m.Data)
		if data == nil {
			data = make(map[string]any, 1)
		}
		data["Count"] = *m.Count
		lc.TemplateData = data
		lc.PluralCount = *m.Count
	}

	// A key missing from the active locale still renders in the default
	// language, with a non-nil error.
	msg, err := t.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, m.ID,
			config.LogKeyError, err,
		)
		if msg == "" {
			return m.ID
		}
	}
	return msg
}
