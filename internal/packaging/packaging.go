// Package packaging turns the desktop app into Android and web bundles by
// driving the fyne packaging tool.
package packaging

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// ManifestFile is read by the fyne tool from the project directory.
const ManifestFile = "FyneApp.toml"

type Target string

const (
	TargetAPK Target = "apk"
	TargetAAB Target = "aab"
	TargetWeb Target = "web"
)

// ParseTarget accepts the dispatcher's command names; "android" is an alias for apk.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android", "apk":
		return TargetAPK, nil
	case "aab":
		return TargetAAB, nil
	case "web":
		return TargetWeb, nil
	default:
		return "", fmt.Errorf("unknown build target %q", s)
	}
}

// Metadata is stamped into every bundle.
type Metadata struct {
	Project     string
	Name        string
	ID          string
	Version     string
	Build       int
	Icon        string
	Description string
}

// DefaultMetadata matches the published app.
func DefaultMetadata() Metadata {
	return Metadata{
		Project:     "linkedin-poster-client",
		Name:        "LinkedIn Post Generator",
		ID:          "com.tonyvm.postgen",
		Version:     "0.1.0",
		Build:       1,
		Icon:        "Icon.png",
		Description: "Client app to send content to Make.com workflows for LinkedIn post generation",
	}
}

func (m Metadata) validate() error {
	if m.Name == "" || m.ID == "" || m.Version == "" {
		return fmt.Errorf("build metadata needs name, id and version")
	}
	if m.Build <= 0 {
		return fmt.Errorf("build number must be positive, got %d", m.Build)
	}
	return nil
}

type manifest struct {
	Website     string               `toml:"Website,omitempty"`
	Details     manifestDetails      `toml:"Details"`
	LinuxAndBSD *manifestLinuxAndBSD `toml:"LinuxAndBSD,omitempty"`
}

type manifestDetails struct {
	Icon    string `toml:"Icon,omitempty"`
	Name    string `toml:"Name"`
	ID      string `toml:"ID"`
	Version string `toml:"Version"`
	Build   int    `toml:"Build"`
}

type manifestLinuxAndBSD struct {
	GenericName string   `toml:"GenericName,omitempty"`
	Categories  []string `toml:"Categories,omitempty"`
	Comment     string   `toml:"Comment,omitempty"`
}

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

type Builder struct {
	runner Runner
	dir    string
	tool   string
	meta   Metadata
}

// NewBuilder packages the project rooted at dir.
func NewBuilder(runner Runner, dir string, meta Metadata) *Builder {
	return &Builder{
		runner: runner,
		dir:    dir,
		tool:   "fyne",
		meta:   meta,
	}
}

// Result says where the bundle ended up.
type Result struct {
	Target   Target
	Location string
}

func (b *Builder) Build(ctx context.Context, target Target) (*Result, error) {
	if err := b.meta.validate(); err != nil {
		return nil, err
	}

	if err := b.WriteManifest(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", ManifestFile, err)
	}

	args, location := b.command(target)
	if args == nil {
		return nil, fmt.Errorf("unknown build target %q", target)
	}

	log.Info().
		Str("target", string(target)).
		Str("tool", b.tool).
		Strs("args", args).
		Msg("packaging")

	if err := b.runner.Run(ctx, b.dir, b.tool, args...); err != nil {
		return nil, fmt.Errorf("%s build failed: %w", target, err)
	}

	return &Result{Target: target, Location: location}, nil
}

func (b *Builder) command(target Target) ([]string, string) {
	common := []string{
		"--name", b.meta.Name,
		"--app-id", b.meta.ID,
		"--app-version", b.meta.Version,
		"--app-build", strconv.Itoa(b.meta.Build),
	}

	switch target {
	case TargetAPK:
		return append([]string{"package", "-os", "android"}, common...), "./" + b.meta.Name + ".apk"
	case TargetAAB:
		return append([]string{"release", "-os", "android"}, common...), "./" + b.meta.Name + ".aab"
	case TargetWeb:
		return append([]string{"package", "-os", "web"}, common...), "./wasm/"
	default:
		return nil, ""
	}
}

// WriteManifest stores the metadata where the fyne tool expects it.
func (b *Builder) WriteManifest() error {
	m := manifest{
		Details: manifestDetails{
			Icon:    b.meta.Icon,
			Name:    b.meta.Name,
			ID:      b.meta.ID,
			Version: b.meta.Version,
			Build:   b.meta.Build,
		},
	}
	if b.meta.Description != "" {
		m.LinuxAndBSD = &manifestLinuxAndBSD{
			GenericName: b.meta.Project,
			Categories:  []string{"Network", "Office"},
			Comment:     b.meta.Description,
		}
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.dir, ManifestFile), data, 0o644)
}

// ReadManifest loads a previously written manifest.
func ReadManifest(dir string) (Metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return Metadata{}, err
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}

	meta := Metadata{
		Name:    m.Details.Name,
		ID:      m.Details.ID,
		Version: m.Details.Version,
		Build:   m.Details.Build,
		Icon:    m.Details.Icon,
	}
	if m.LinuxAndBSD != nil {
		meta.Project = m.LinuxAndBSD.GenericName
		meta.Description = m.LinuxAndBSD.Comment
	}
	return meta, nil
}

// Usage lists the dispatcher commands.
func Usage(program string) string {
	return fmt.Sprintf(`%[2]s - Build Script

Available commands:
  android     Build Android APK
  apk         Same as android
  aab         Build Android App Bundle (for Play Store)
  web         Build Web application
  help        Show this help message

Usage:
  %[1]s build <command>

Examples:
  %[1]s build android
  %[1]s build aab
  %[1]s build web
`, program, DefaultMetadata().Name)
}
