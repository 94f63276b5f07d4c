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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/postgen/internal/langs"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the target languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		def := cfg.DefaultLanguage()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCODE\tALIASES\tDEFAULT")
		for _, l := range langs.All() {
			mark := ""
			if l.Name == def {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Name, l.Code(), strings.Join(l.Aliases, ","), mark)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
