package purge

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/projclean/internal/core"
)

// DeleteError records why one item could not be removed.
type DeleteError struct {
	RelPath string `json:"relative_path"`
	Message string `json:"message"`
}

// DeletionReport summarises a deletion batch.
type DeletionReport struct {
	Deleted int           `json:"deleted"`
	Freed   int64         `json:"freed"`
	DryRun  bool          `json:"dry_run,omitempty"`
	Errors  []DeleteError `json:"errors,omitempty"`
}

// Delete removes every item, folders recursively and files directly. A
// failing item is recorded in the report and the batch carries on; nothing
// already removed is restored. Freed is based on the sizes measured at scan
// time.
func Delete(items []FoundItem, dryRun bool) DeletionReport {
	report := DeletionReport{DryRun: dryRun}

	for _, item := range items {
		if err := core.SafeDelete(item.Path, dryRun); err != nil {
			log.WithError(err).WithField("path", item.RelPath).Warn("delete failed")
			report.Errors = append(report.Errors, DeleteError{
				RelPath: item.RelPath,
				Message: err.Error(),
			})
			continue
		}
		report.Deleted++
		report.Freed += item.Size
	}

	log.WithFields(log.Fields{
		"deleted": report.Deleted,
		"failed":  len(report.Errors),
		"freed":   report.Freed,
		"dry_run": dryRun,
	}).Info("deletion finished")
	return report
}

// HasErrors reports whether any item failed.
func (r DeletionReport) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary renders the report for display, listing at most preview failing
// paths. A preview of zero or less lists none.
func (r DeletionReport) Summary(preview int) string {
	verb := "Deleted"
	if r.DryRun {
		verb = "Would delete"
	}

	if !r.HasErrors() {
		if r.DryRun {
			return fmt.Sprintf("%s %s items (%s)", verb, humanize.Comma(int64(r.Deleted)), core.FormatSize(r.Freed))
		}
		return fmt.Sprintf("Successfully deleted %s items (%s freed)", humanize.Comma(int64(r.Deleted)), core.FormatSize(r.Freed))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s items (%s).\n\nErrors (%d):",
		verb, humanize.Comma(int64(r.Deleted)), core.FormatSize(r.Freed), len(r.Errors))

	shown := r.Errors
	if preview < 0 {
		preview = 0
	}
	if len(shown) > preview {
		shown = shown[:preview]
	}
	for _, e := range shown {
		fmt.Fprintf(&b, "\n%s: %s", e.RelPath, e.Message)
	}
	if rest := len(r.Errors) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more errors", rest)
	}
	return b.String()
}
