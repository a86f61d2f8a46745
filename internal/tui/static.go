package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lakshaymaurya-felt/projclean/internal/core"
	"github.com/lakshaymaurya-felt/projclean/internal/purge"
	"github.com/lakshaymaurya-felt/projclean/internal/selection"
)

// PrintStatic writes a plain-text listing of scan results, largest first.
// Used when stdout is not a terminal and the interactive screen cannot run.
func PrintStatic(w io.Writer, root, template string, items []purge.FoundItem, warnings []string) {
	fmt.Fprintf(w, "  Project:  %s\n", root)
	fmt.Fprintf(w, "  Template: %s\n", template)
	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))

	if len(items) == 0 {
		fmt.Fprintln(w, "  No cleanup items found - project is clean!")
		return
	}

	sorted := append([]purge.FoundItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Size != sorted[j].Size {
			return sorted[i].Size > sorted[j].Size
		}
		return sorted[i].RelPath < sorted[j].RelPath
	})

	for _, it := range sorted {
		marker := ""
		if it.IsFolder() {
			marker = "/"
		}
		fmt.Fprintf(w, "  %-6s %10s  %s%s\n", it.Kind, core.FormatSize(it.Size), it.RelPath, marker)
	}

	count, size := selection.Totals(items)
	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))
	fmt.Fprintf(w, "  Found %s items (%s)\n", humanize.Comma(int64(count)), core.FormatSize(size))

	if len(warnings) > 0 {
		fmt.Fprintf(w, "  %d directories could not be read:\n", len(warnings))
		for _, msg := range warnings {
			fmt.Fprintf(w, "    %s\n", msg)
		}
	}
}
