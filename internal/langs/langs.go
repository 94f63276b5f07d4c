// Package langs holds the fixed catalogue of target languages offered to the user.
//
// The display name is what travels on the wire as "target-lang"; the BCP 47
// tag is used to accept ISO codes on the command line and to map detector
// output back onto the catalogue.
package langs

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one selectable target language.
type Language struct {
	Name    string
	Tag     language.Tag
	Aliases []string
}

// Code returns the ISO 639-1 base code of the language.
func (l Language) Code() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// Default is preselected in every form.
var Default = catalogue[0]

var catalogue = []Language{
	{Name: "English", Tag: language.English},
	{Name: "Spanish", Tag: language.Spanish},
	{Name: "French", Tag: language.French},
	{Name: "German", Tag: language.German},
	{Name: "Italian", Tag: language.Italian},
	{Name: "Portuguese", Tag: language.Portuguese},
	{Name: "Chinese", Tag: language.Chinese},
	{Name: "Japanese", Tag: language.Japanese},
	{Name: "Korean", Tag: language.Korean},
	{Name: "Russian", Tag: language.Russian},
	{Name: "Arabic", Tag: language.Arabic},
	{Name: "Hindi", Tag: language.Hindi},
	{Name: "Dutch", Tag: language.Dutch},
	{Name: "Swedish", Tag: language.Swedish},
	{Name: "Norwegian", Tag: language.Norwegian, Aliases: []string{"nb", "nn"}},
}

// All returns the catalogue in display order.
func All() []Language {
	out := make([]Language, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the display names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, l := range catalogue {
		names[i] = l.Name
	}
	return names
}

// Lookup resolves a display name (case-insensitive) or a language code such as
// "es", "pt-BR" or "nb" to a catalogue entry.
func Lookup(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Language{}, false
	}

	for _, l := range catalogue {
		if strings.EqualFold(l.Name, s) {
			return l, true
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, false
	}
	return ByTag(tag)
}

// ByTag maps any tag onto the catalogue by its base language. Tags whose base
// language would have to be guessed (und, und-FR) do not match.
func ByTag(tag language.Tag) (Language, bool) {
	base, conf := tag.Base()
	if conf != language.Exact {
		return Language{}, false
	}
	code := base.String()

	for _, l := range catalogue {
		if l.Code() == code {
			return l, true
		}
		for _, alias := range l.Aliases {
			if alias == code {
				return l, true
			}
		}
	}
	return Language{}, false
}
