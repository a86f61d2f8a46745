package cmd

import (
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
	"github.com/lakshaymaurya-felt/projclean/internal/purge"
	"github.com/lakshaymaurya-felt/projclean/internal/selection"
	"github.com/lakshaymaurya-felt/projclean/internal/tui"
)

var jsonOutput bool

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List removable items without deleting anything",
	Long:  "Scan a project for the active template's folders and files and print them, largest first.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.OutOrStdout(), rootArg(args), activeTemplate())
	},
}

func init() {
	scanCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// scanResult is one synchronous scan, items sorted largest first.
type scanResult struct {
	Root      string            `json:"root"`
	Template  string            `json:"template"`
	Items     []purge.FoundItem `json:"items"`
	Count     int               `json:"count"`
	TotalSize int64             `json:"total_size"`
	Warnings  []string          `json:"warnings,omitempty"`
}

func scanProject(root, name string) (*scanResult, error) {
	tmpl, err := lookupTemplate(name)
	if err != nil {
		return nil, err
	}
	abs, err := purge.ValidateRoot(root)
	if err != nil {
		return nil, err
	}

	scanner := purge.NewScanner(tmpl)
	items, err := scanner.Scan(abs)
	if err != nil {
		return nil, err
	}

	store := selection.NewStore()
	store.ReplaceAll(items)
	store.SortBy(selection.SortBySize)

	res := &scanResult{
		Root:     abs,
		Template: tmpl.Name,
		Items:    store.Items(),
		Warnings: scanner.Warnings(),
	}
	res.Count, res.TotalSize = selection.Totals(res.Items)
	log.WithFields(log.Fields{
		"items":   res.Count,
		"scanned": scanner.ScannedCount(),
	}).Debug("scan finished")
	return res, nil
}

func lookupTemplate(name string) (config.Template, error) {
	reg := registry
	if reg == nil {
		reg = config.NewRegistry()
	}
	return reg.Lookup(name)
}

func runScan(w io.Writer, root, name string) error {
	res, err := scanProject(root, name)
	if err != nil {
		return err
	}
	if jsonOutput {
		if res.Items == nil {
			res.Items = []purge.FoundItem{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	tui.PrintStatic(w, res.Root, res.Template, res.Items, res.Warnings)
	return nil
}
