package i18n

import (
	"embed"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.es.toml"}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// New builds a Translator using the given default locale (e.g. "en").
// Unknown locales fall back to English.
func New(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("i18n: failed to load catalogue")
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Supported reports whether a catalogue exists for locale.
func (t *Translator) Supported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	for _, l := range t.bundle.LanguageTags() {
		lb, _ := l.Base()
		if lb == base {
			return true
		}
	}
	return false
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Debug().Err(err).Str("key", key).Strs("locales", languages).Msg("i18n: localize failed")
		// go-i18n reports a default-language fallback as an error but still renders it.
		if msg == "" {
			return key
		}
	}
	return msg
}

// Catalog binds the translator to one locale.
func (t *Translator) Catalog(locale string) Catalog {
	return Catalog{t: t, locale: strings.TrimSpace(locale)}
}

// Catalog renders messages for a fixed locale.
type Catalog struct {
	t      *Translator
	locale string
}

func (c Catalog) T(key string, data map[string]any) string {
	return c.t.T(c.locale, key, data)
}

func (c Catalog) Locale() string {
	return c.locale
}
