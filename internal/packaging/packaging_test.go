package packaging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type call struct {
	dir  string
	name string
	args []string
}

type recordingRunner struct {
	calls []call
	err   error
}

func (r *recordingRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, call{dir: dir, name: name, args: args})
	return r.err
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    Target
		wantErr bool
	}{
		{input: "android", want: TargetAPK},
		{input: "APK", want: TargetAPK},
		{input: "aab", want: TargetAAB},
		{input: " web ", want: TargetWeb},
		{input: "ios", wantErr: true},
		{input: "help", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuilder_Build_Commands(t *testing.T) {
	tests := []struct {
		target     Target
		wantPrefix []string
		wantSuffix string
	}{
		{target: TargetAPK, wantPrefix: []string{"package", "-os", "android"}, wantSuffix: ".apk"},
		{target: TargetAAB, wantPrefix: []string{"release", "-os", "android"}, wantSuffix: ".aab"},
		{target: TargetWeb, wantPrefix: []string{"package", "-os", "web"}, wantSuffix: "wasm/"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			dir := t.TempDir()
			runner := &recordingRunner{}
			b := NewBuilder(runner, dir, DefaultMetadata())

			res, err := b.Build(context.Background(), tt.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(runner.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(runner.calls))
			}

			c := runner.calls[0]
			if c.name != "fyne" {
				t.Errorf("expected fyne tool, got %q", c.name)
			}
			if c.dir != dir {
				t.Errorf("expected dir %q, got %q", dir, c.dir)
			}
			for i, want := range tt.wantPrefix {
				if c.args[i] != want {
					t.Errorf("arg %d = %q, want %q", i, c.args[i], want)
				}
			}

			joined := strings.Join(c.args, " ")
			for _, want := range []string{"--app-id com.tonyvm.postgen", "--app-version 0.1.0", "--app-build 1"} {
				if !strings.Contains(joined, want) {
					t.Errorf("expected %q in %q", want, joined)
				}
			}

			if res.Target != tt.target || !strings.HasSuffix(res.Location, tt.wantSuffix) {
				t.Errorf("unexpected result %+v", res)
			}
		})
	}
}

func TestBuilder_Build_WritesManifest(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(&recordingRunner{}, dir, DefaultMetadata())

	if _, err := b.Build(context.Background(), TargetWeb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	want := DefaultMetadata()
	if got != want {
		t.Errorf("manifest mismatch\n got: %+v\nwant: %+v", got, want)
	}

	raw, _ := os.ReadFile(filepath.Join(dir, ManifestFile))
	if !strings.Contains(string(raw), "[Details]") {
		t.Errorf("expected [Details] table, got:\n%s", raw)
	}
}

func TestBuilder_Build_RunnerError(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}
	b := NewBuilder(runner, t.TempDir(), DefaultMetadata())

	_, err := b.Build(context.Background(), TargetAPK)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, runner.err) {
		t.Errorf("expected wrapped runner error, got %v", err)
	}
}

func TestBuilder_Build_UnknownTarget(t *testing.T) {
	runner := &recordingRunner{}
	b := NewBuilder(runner, t.TempDir(), DefaultMetadata())

	if _, err := b.Build(context.Background(), Target("ios")); err == nil {
		t.Error("expected error for unknown target")
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected no tool invocation, got %d", len(runner.calls))
	}
}

func TestBuilder_Build_InvalidMetadata(t *testing.T) {
	meta := DefaultMetadata()
	meta.Build = 0
	runner := &recordingRunner{}
	b := NewBuilder(runner, t.TempDir(), meta)

	if _, err := b.Build(context.Background(), TargetAPK); err == nil {
		t.Error("expected error for invalid metadata")
	}
	if len(runner.calls) != 0 {
		t.Error("runner must not be called with invalid metadata")
	}
}

func TestUsage(t *testing.T) {
	u := Usage("postgen")

	for _, want := range []string{"android", "aab", "web", "help", "postgen build web"} {
		if !strings.Contains(u, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
