package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/valpere/postgen/internal/packaging"
)

func TestBuildCmd_HelpIsCaseInsensitive(t *testing.T) {
	for _, arg := range []string{"help", "HELP", "Help"} {
		var out bytes.Buffer
		buildCmd.SetOut(&out)

		if err := buildCmd.RunE(buildCmd, []string{arg}); err != nil {
			t.Errorf("build %s: unexpected error %v", arg, err)
		}
		if !strings.Contains(out.String(), "Available commands:") {
			t.Errorf("build %s: expected usage, got %q", arg, out.String())
		}
	}
	buildCmd.SetOut(nil)
}

func TestManifestUpdate(t *testing.T) {
	dir := t.TempDir()
	meta := packaging.DefaultMetadata()

	if note := manifestUpdate(dir, meta); note != "" {
		t.Errorf("expected no note without a manifest, got %q", note)
	}

	if err := packaging.NewBuilder(nil, dir, meta).WriteManifest(); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	if note := manifestUpdate(dir, meta); note != "" {
		t.Errorf("expected no note for identical metadata, got %q", note)
	}

	next := meta
	next.Version = "0.2.0"
	next.Build = 2
	note := manifestUpdate(dir, next)
	for _, want := range []string{"FyneApp.toml", "0.1.0 (build 1)", "0.2.0 (build 2)"} {
		if !strings.Contains(note, want) {
			t.Errorf("expected %q in %q", want, note)
		}
	}
}
