package detector

import (
	"testing"
)

func TestDetector_DetectCatalogue(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantLang string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace",
			text:   "   \n",
			wantOK: false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantLang: "English",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantLang: "German",
			wantOK:   true,
		},
		{
			name:     "french text",
			text:     "Bonjour, ceci est un test en français.",
			wantLang: "French",
			wantOK:   true,
		},
		{
			name:     "spanish text",
			text:     "Hola, esto es una prueba en español.",
			wantLang: "Spanish",
			wantOK:   true,
		},
		{
			name:     "russian text",
			text:     "Привет, это тест на русском языке.",
			wantLang: "Russian",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := d.DetectCatalogue(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectCatalogue(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if ok && lang.Name != tt.wantLang {
				t.Errorf("DetectCatalogue(%q) = %q, want %q", tt.text, lang.Name, tt.wantLang)
			}
		})
	}
}

func TestDetector_Detect_Empty(t *testing.T) {
	d := New()

	if _, ok := d.Detect(""); ok {
		t.Error("expected no detection for empty text")
	}
}
