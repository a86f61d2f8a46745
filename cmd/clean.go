package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/projclean/internal/core"
	"github.com/lakshaymaurya-felt/projclean/internal/purge"
	"github.com/lakshaymaurya-felt/projclean/internal/ui"
)

var assumeYes bool

// errNotConfirmed is returned by clean when neither --yes nor --dry-run is set.
var errNotConfirmed = errors.New("refusing to delete without --yes (use --dry-run to preview)")

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Delete everything the template matches",
	Long: `Scan a project and delete every item found, without prompting.

Requires --yes unless --dry-run is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !dryRun {
			return errNotConfirmed
		}
		return runClean(cmd.OutOrStdout(), rootArg(args), activeTemplate())
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking")
}

func runClean(w io.Writer, root, name string) error {
	res, err := scanProject(root, name)
	if err != nil {
		return err
	}
	if res.Count == 0 {
		fmt.Fprintln(w, ui.Success(ui.IconCheck+" No cleanup items found - project is clean!"))
		return nil
	}

	before, volErr := core.GetVolumeUsage(res.Root)
	if volErr != nil {
		log.WithError(volErr).Debug("volume usage unavailable")
	}

	fmt.Fprintf(w, "%s %s items (%s) in %s\n",
		ui.Bold("Cleaning"), humanize.Comma(int64(res.Count)), ui.FormatSize(res.TotalSize), res.Root)

	report := purge.Delete(res.Items, dryRun)
	summary := report.Summary(previewLimit())
	if report.HasErrors() {
		fmt.Fprintln(w, ui.Warning(summary))
	} else {
		fmt.Fprintln(w, ui.Success(summary))
	}

	if volErr == nil && !dryRun {
		if after, err := core.GetVolumeUsage(res.Root); err == nil {
			fmt.Fprintln(w, ui.Muted(fmt.Sprintf("Free space: %s %s %s",
				ui.FormatSize(int64(before.Free)), ui.IconChevron, ui.FormatSize(int64(after.Free)))))
		}
	}

	if report.HasErrors() {
		return fmt.Errorf("%d of %d items could not be deleted", len(report.Errors), res.Count)
	}
	return nil
}

func previewLimit() int {
	if cfg == nil {
		return 5
	}
	return cfg.ErrorPreview
}
