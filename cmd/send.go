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
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/valpere/postgen/internal/detector"
	"github.com/valpere/postgen/internal/submission"
	"github.com/valpere/postgen/internal/webhook"
)

var (
	sendWebhook string
	sendLang    string
	sendTimeout time.Duration
	sendStdin   bool
	sendDetect  bool
	sendVerbose bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a URL or a text idea to the webhook",
	Long: `Send one submission to the Make.com webhook and print the outcome.

The webhook and the target language default to the configured values
(webhook.url and language.default). Languages may be given by name or code:
  postgen send url https://example.com/article --lang es
  postgen send text "Why Go fits CLI tools" -l German
  echo "An idea" | postgen send text --stdin`,
}

var sendURLCmd = &cobra.Command{
	Use:   "url <URL>",
	Short: "Send a URL to be processed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSend(cmd, submission.KindURL, args[0])
	},
}

var sendTextCmd = &cobra.Command{
	Use:   "text [TEXT...]",
	Short: "Send a text or idea for the post",
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.Join(args, " ")
		if sendStdin {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			content = string(data)
		}

		if sendDetect {
			reportDetected(cmd.ErrOrStderr(), content, sendLang)
		}

		return runSend(cmd, submission.KindText, content)
	},
}

func init() {
	flags := sendCmd.PersistentFlags()
	flags.StringVarP(&sendWebhook, "webhook", "w", "", "webhook URL (default: webhook.url from config)")
	flags.StringVarP(&sendLang, "lang", "l", "", "target language name or code (default: language.default from config)")
	flags.DurationVar(&sendTimeout, "timeout", 0, "request timeout (default: webhook.timeout from config)")
	flags.BoolVar(&sendVerbose, "verbose", false, "log the request at debug level")

	sendTextCmd.Flags().BoolVar(&sendStdin, "stdin", false, "read the text from stdin")
	sendTextCmd.Flags().BoolVar(&sendDetect, "detect", false, "report the detected language of the text")

	sendCmd.AddCommand(sendURLCmd, sendTextCmd)
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, kind submission.Kind, content string) error {
	if sendVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	target, err := resolveLanguage(sendLang, cfg.DefaultLanguage())
	if err != nil {
		return err
	}
	// An explicit blank --lang is left for the controller to reject.
	if cmd.Flags().Changed("lang") && strings.TrimSpace(sendLang) == "" {
		target = ""
	}

	timeout := cfg.Webhook.Timeout
	if sendTimeout > 0 {
		timeout = sendTimeout
	}

	catalog := newTranslator(cfg).Catalog(cfg.UI.Locale)
	controller := submission.NewController(webhook.New(timeout), catalog)

	out := controller.Submit(cmd.Context(), submission.Request{
		Kind:           kind,
		TargetLanguage: target,
		Content:        content,
		Endpoint:       firstNonEmpty(sendWebhook, cfg.Webhook.URL),
	})

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Status)
	if out.Result != "" {
		fmt.Fprintln(w, out.Result)
	}
	if sendVerbose {
		reportVerbose(cmd.ErrOrStderr(), out)
	}

	if !out.Succeeded() {
		return fmt.Errorf("%s submission %s", kind, out.State)
	}
	return nil
}

func reportVerbose(w io.Writer, out submission.Outcome) {
	if out.Latency > 0 {
		fmt.Fprintf(w, "Submission %s took %s\n", out.ID, out.Latency.Round(time.Millisecond))
	}
	if body := strings.TrimSpace(out.Body); body != "" {
		fmt.Fprintf(w, "Response body:\n%s\n", body)
	}
}

// reportDetected prints a hint about the language the text is written in.
// It never changes the submission.
func reportDetected(w io.Writer, content, lang string) {
	detected, ok := detector.New().DetectCatalogue(content)
	if !ok {
		fmt.Fprintln(w, "Could not detect content language")
		return
	}
	fmt.Fprintf(w, "Detected content language: %s\n", detected.Name)

	target, err := resolveLanguage(lang, cfg.DefaultLanguage())
	if err == nil && target != "" && target != detected.Name {
		fmt.Fprintf(w, "Note: the post will be generated in %s\n", target)
	}
}
