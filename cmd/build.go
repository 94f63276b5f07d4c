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

	"github.com/spf13/cobra"

	"github.com/valpere/postgen/internal/packaging"
)

var buildCmd = &cobra.Command{
	Use:   "build [android|apk|aab|web|help]",
	Short: "Package the app for Android or the web",
	Long: `Package the desktop app with the fyne tool.

The metadata written to FyneApp.toml comes from the build.* config keys
and defaults to the published app.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 || strings.EqualFold(strings.TrimSpace(args[0]), "help") {
			fmt.Fprint(out, packaging.Usage(rootCmd.Name()))
			return nil
		}

		target, err := packaging.ParseTarget(args[0])
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), packaging.Usage(rootCmd.Name()))
			return err
		}

		dir := firstNonEmpty(cfg.Build.Output, ".")
		meta := buildMetadata(cfg.Build)
		if note := manifestUpdate(dir, meta); note != "" {
			fmt.Fprintln(out, note)
		}

		runner := packaging.ExecRunner{Stdout: out, Stderr: cmd.ErrOrStderr()}
		builder := packaging.NewBuilder(runner, dir, meta)

		fmt.Fprintf(out, "Building %s...\n", target)
		res, err := builder.Build(cmd.Context(), target)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Built %s successfully\n", res.Target)
		fmt.Fprintf(out, "Location: %s\n", res.Location)
		return nil
	},
}

// manifestUpdate describes how meta differs from the manifest already in dir.
func manifestUpdate(dir string, meta packaging.Metadata) string {
	prev, err := packaging.ReadManifest(dir)
	if err != nil || prev == meta {
		return ""
	}
	return fmt.Sprintf("Updating %s: %s %s (build %d) -> %s %s (build %d)",
		packaging.ManifestFile, prev.ID, prev.Version, prev.Build, meta.ID, meta.Version, meta.Build)
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
