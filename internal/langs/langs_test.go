package langs

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogue_Size(t *testing.T) {
	if got := len(All()); got != 15 {
		t.Errorf("expected 15 languages, got %d", got)
	}
	if len(Names()) != len(All()) {
		t.Error("Names and All disagree on length")
	}
}

func TestDefault_IsEnglish(t *testing.T) {
	if Default.Name != "English" {
		t.Errorf("expected default English, got %q", Default.Name)
	}
	if Names()[0] != "English" {
		t.Errorf("expected English first, got %q", Names()[0])
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "Klingon"

	if Names()[0] != "English" {
		t.Error("mutating All() result changed the catalogue")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact name", input: "Spanish", want: "Spanish", wantOK: true},
		{name: "lower case name", input: "german", want: "German", wantOK: true},
		{name: "padded name", input: "  Hindi ", want: "Hindi", wantOK: true},
		{name: "iso code", input: "fr", want: "French", wantOK: true},
		{name: "regional code", input: "pt-BR", want: "Portuguese", wantOK: true},
		{name: "script code", input: "zh-Hant", want: "Chinese", wantOK: true},
		{name: "bokmal alias", input: "nb", want: "Norwegian", wantOK: true},
		{name: "norwegian code", input: "no", want: "Norwegian", wantOK: true},
		{name: "not in catalogue", input: "uk", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "!!", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.Name != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestByTag_Und(t *testing.T) {
	if _, ok := ByTag(language.Und); ok {
		t.Error("expected no match for und")
	}
}

func TestLanguage_Code(t *testing.T) {
	l, _ := Lookup("Japanese")
	if l.Code() != "ja" {
		t.Errorf("expected 'ja', got %q", l.Code())
	}
}
