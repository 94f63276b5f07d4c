package i18n

import "testing"

func TestTranslator_T(t *testing.T) {
	tr := New("en")

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{name: "english", locale: "en", key: "status_ready", want: "Ready to send"},
		{name: "spanish", locale: "es", key: "status_ready", want: "Listo para enviar"},
		{name: "regional falls back to base", locale: "es-MX", key: "status_sending", want: "Enviando..."},
		{name: "unknown locale uses default", locale: "fr", key: "status_failed", want: "Request failed"},
		{name: "empty locale uses default", locale: "", key: "status_success", want: "Request sent successfully"},
		{name: "template data", locale: "en", key: "result_status_code", data: map[string]any{"Code": 200}, want: "Status Code: 200"},
		{name: "cause text", locale: "en", key: "status_unexpected", data: map[string]any{"Cause": "boom"}, want: "Unexpected error: boom"},
		{name: "missing key", locale: "en", key: "no_such_key", want: "no_such_key"},
		{name: "empty key", locale: "en", key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.T(tt.locale, tt.key, tt.data)
			if got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslator_InvalidDefault(t *testing.T) {
	tr := New("!!")

	if got := tr.T("", "status_ready", nil); got != "Ready to send" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestTranslator_Supported(t *testing.T) {
	tr := New("en")

	for _, locale := range []string{"en", "es", "es-ES"} {
		if !tr.Supported(locale) {
			t.Errorf("expected %q to be supported", locale)
		}
	}
	for _, locale := range []string{"de", "", "!!"} {
		if tr.Supported(locale) {
			t.Errorf("expected %q to be unsupported", locale)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := New("en").Catalog(" es ")

	if c.Locale() != "es" {
		t.Errorf("expected trimmed locale, got %q", c.Locale())
	}
	if got := c.T("ui_send_text", nil); got != "Enviar texto" {
		t.Errorf("expected Spanish label, got %q", got)
	}
}
