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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/postgen/internal/config"
	"github.com/valpere/postgen/internal/logger"
	"github.com/valpere/postgen/internal/packaging"
	"github.com/valpere/postgen/internal/webhook"
)

var version = "0.1.0"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "postgen",
	Short: "LinkedIn Post Generator client",
	Long: `A client that sends a URL or a free-text idea, together with a target language,
to a Make.com webhook that generates a LinkedIn post.

The same form is available as a desktop window, a browser page and a CLI:
  postgen gui               open the desktop app
  postgen serve             serve the form on http://localhost:8088
  postgen send url <URL>    send from the terminal

Use "postgen build --help" to package the app for Android or the web.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./postgen.yaml or $HOME/.postgen/postgen.yaml)")
}

func initConfig() {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("postgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.postgen")
	}

	viper.SetEnvPrefix("POSTGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

func setDefaults() {
	viper.SetDefault("webhook.url", "")
	viper.SetDefault("webhook.timeout", webhook.DefaultTimeout)

	viper.SetDefault("language.default", "English")
	viper.SetDefault("ui.locale", "en")

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output", "stderr")
	viper.SetDefault("log.file_path", "")
	viper.SetDefault("log.time_format", "RFC3339")

	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 8088)
	viper.SetDefault("web.mode", "release")

	meta := packaging.DefaultMetadata()
	viper.SetDefault("build.project", meta.Project)
	viper.SetDefault("build.name", meta.Name)
	viper.SetDefault("build.id", meta.ID)
	viper.SetDefault("build.version", meta.Version)
	viper.SetDefault("build.build", meta.Build)
	viper.SetDefault("build.icon", meta.Icon)
	viper.SetDefault("build.description", meta.Description)
	viper.SetDefault("build.output", ".")
}
