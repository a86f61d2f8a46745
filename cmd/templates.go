package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/projclean/internal/ui"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		active := activeTemplate()
		for _, t := range registry.Templates() {
			marker := "  "
			if strings.EqualFold(t.Name, active) {
				marker = ui.IconChevron + " "
			}
			fmt.Fprintf(w, "%s%s\n", marker, ui.Bold(t.Name))
			fmt.Fprintf(w, "    folders: %s\n", strings.Join(t.Folders, ", "))
			fmt.Fprintf(w, "    files:   %s\n", strings.Join(t.Files, ", "))
		}
		return nil
	},
}
