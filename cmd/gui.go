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
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/valpere/postgen/internal/gui"
	"github.com/valpere/postgen/internal/submission"
	"github.com/valpere/postgen/internal/webhook"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop app",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewWithID(buildMetadata(cfg.Build).ID)

		catalog := newTranslator(cfg).Catalog(cfg.UI.Locale)
		board := submission.NewBoard(catalog.T(submission.MsgReady, nil))
		controller := submission.NewController(webhook.New(cfg.Webhook.Timeout), catalog,
			submission.WithObserver(board))

		form := gui.NewForm(controller, board, catalog, gui.Options{
			Webhook:         cfg.Webhook.URL,
			DefaultLanguage: cfg.DefaultLanguage(),
		})

		gui.NewWindow(a, form, catalog.T("ui_title", nil)).ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
