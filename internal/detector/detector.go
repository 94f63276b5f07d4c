// Package detector guesses which catalogue language a piece of content is written in.
// The guess is only a hint for the user; it never changes what is sent.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/postgen/internal/langs"
)

// catalogueLanguages mirrors langs in lingua terms. Norwegian is written as
// either Bokmål or Nynorsk.
var catalogueLanguages = []lingua.Language{
	lingua.English, lingua.Spanish, lingua.French, lingua.German, lingua.Italian,
	lingua.Portuguese, lingua.Chinese, lingua.Japanese, lingua.Korean, lingua.Russian,
	lingua.Arabic, lingua.Hindi, lingua.Dutch, lingua.Swedish, lingua.Bokmal, lingua.Nynorsk,
}

// Detector is expensive to build; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(catalogueLanguages...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectCatalogue maps the detected language onto the target-language catalogue.
func (d *Detector) DetectCatalogue(text string) (langs.Language, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return langs.Language{}, false
	}
	return langs.Lookup(strings.ToLower(lang.IsoCode639_1().String()))
}
