/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/valpere/postgen/internal/config"
	"github.com/valpere/postgen/internal/i18n"
	"github.com/valpere/postgen/internal/langs"
	"github.com/valpere/postgen/internal/packaging"
)

// resolveLanguage maps a --lang value (name or code) to the catalogue name
// that goes on the wire. An empty value falls back to fallback.
func resolveLanguage(value, fallback string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	l, ok := langs.Lookup(value)
	if !ok {
		return "", fmt.Errorf("unknown language %q, run \"postgen languages\" for the list", value)
	}
	return l.Name, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func newTranslator(c *config.Config) *i18n.Translator {
	return i18n.New(c.UI.Locale)
}

// buildMetadata fills the gaps of the configured metadata with the published defaults.
func buildMetadata(b config.BuildConfig) packaging.Metadata {
	meta := packaging.DefaultMetadata()
	meta.Project = firstNonEmpty(b.Project, meta.Project)
	meta.Name = firstNonEmpty(b.Name, meta.Name)
	meta.ID = firstNonEmpty(b.ID, meta.ID)
	meta.Version = firstNonEmpty(b.Version, meta.Version)
	meta.Icon = firstNonEmpty(b.Icon, meta.Icon)
	meta.Description = firstNonEmpty(b.Description, meta.Description)
	if b.Build > 0 {
		meta.Build = b.Build
	}
	return meta
}
