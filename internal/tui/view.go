package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lakshaymaurya-felt/projclean/internal/purge"
	"github.com/lakshaymaurya-felt/projclean/internal/selection"
	"github.com/lakshaymaurya-felt/projclean/internal/ui"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	clrDim    = ui.ColorMuted
	clrDir    = ui.ColorCoral
	clrFile   = ui.ColorText
	clrLarge  = ui.ColorWarning
	clrCursor = ui.ColorPrimary
)

const largeItem = 100 << 20

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")
	s.WriteString(m.renderBody(w))
	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := ui.TitleStyle().Render("  " + ui.IconDiamond + " Project Cleaner")

	pathLine := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render("  " + m.root)

	meta := []string{"template " + ui.IconChevron + " " + m.Template()}
	if m.opts.DryRun {
		meta = append(meta, ui.TagWarningStyle().Render(" DRY RUN "))
	}
	if m.volume != nil {
		meta = append(meta, fmt.Sprintf("%s free on volume", ui.FormatSize(int64(m.volume.Free))))
	}
	metaLine := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render("  " + strings.Join(meta, "   "))

	inner := lipgloss.JoinVertical(lipgloss.Left, title, pathLine, metaLine)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(inner)
}

// ─── Body (item list) ────────────────────────────────────────────────────────

func (m Model) renderBody(w int) string {
	switch {
	case m.phase == phaseScanning:
		return fmt.Sprintf("  %s Scanning %s…", m.spinner.View(), m.Template())
	case m.phase == phaseDeleting:
		n, size := selection.Totals(m.store.Selected())
		return fmt.Sprintf("  %s Deleting %s items (%s)…", m.spinner.View(), humanize.Comma(int64(n)), ui.FormatSize(size))
	case m.store.Len() == 0 && m.err == nil:
		return lipgloss.NewStyle().
			Foreground(ui.ColorSuccess).
			Render("  " + ui.IconCheck + " No cleanup items found - project is clean!")
	}

	items := m.store.Items()
	vh := m.viewportHeight()
	var lines []string
	for i := m.offset; i < len(items) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderItem(items[i], w, i == m.cursor))
	}

	if len(items) > vh {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render(fmt.Sprintf("  ── %d-%d of %d ──", m.offset+1, min(m.offset+vh, len(items)), len(items))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(item purge.FoundItem, w int, cursor bool) string {
	check := ui.IconEmpty
	if item.Selected {
		check = ui.IconSelected
	}

	icon := ui.IconBullet + " "
	nameColor := clrFile
	if item.IsFolder() {
		icon = ui.IconFolder
		nameColor = clrDir
	}
	if item.Size >= largeItem {
		nameColor = clrLarge
	}

	maxName := w - 24
	if maxName < 12 {
		maxName = 12
	}
	name := item.RelPath
	if r := []rune(name); len(r) > maxName {
		name = "…" + string(r[len(r)-maxName+1:])
	}

	nameStr := lipgloss.NewStyle().Foreground(nameColor).Bold(item.IsFolder()).Render(name)
	sizeStr := lipgloss.NewStyle().Foreground(ui.ColorTextDim).Render(fmt.Sprintf("%10s", ui.FormatSize(item.Size)))
	checkStr := lipgloss.NewStyle().Foreground(clrDim).Render(check)

	line := fmt.Sprintf("  %s %s  %s%s", checkStr, sizeStr, icon, nameStr)
	if cursor {
		mark := lipgloss.NewStyle().Foreground(clrCursor).Bold(true).Render(ui.IconBlock)
		line = " " + mark + line[2:]
	}
	return line
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	var parts []string

	if m.phase != phaseScanning {
		all, allSize := selection.Totals(m.store.Items())
		sel, selSize := selection.Totals(m.store.Selected())
		totals := fmt.Sprintf("  Found %s items (%s)  %s  Selected %s (%s)  %s  sort: %s",
			humanize.Comma(int64(all)), ui.FormatSize(allSize), ui.IconPipe,
			humanize.Comma(int64(sel)), ui.FormatSize(selSize), ui.IconPipe, m.sortMode)
		parts = append(parts, lipgloss.NewStyle().Foreground(ui.ColorText).Render(totals))
	}

	if len(m.warnings) > 0 {
		parts = append(parts, "  "+ui.Warning(fmt.Sprintf("%s %d directories could not be read", ui.IconWarning, len(m.warnings))))
	}

	if m.notice != "" {
		for _, l := range strings.Split(m.notice, "\n") {
			parts = append(parts, "  "+lipgloss.NewStyle().Foreground(ui.ColorSecondary).Render(l))
		}
	}

	if m.err != nil {
		parts = append(parts,
			lipgloss.NewStyle().
				Foreground(ui.ColorError).
				Render("  "+ui.IconError+" "+m.err.Error()))
	}

	if m.phase == phaseConfirm {
		n, size := selection.Totals(m.store.Selected())
		verb := "Delete"
		if m.opts.DryRun {
			verb = "Simulate deleting"
		}
		prompt := fmt.Sprintf("  %s %s %s items (%s)? This cannot be undone. [y/n]",
			ui.IconWarning, verb, humanize.Comma(int64(n)), ui.FormatSize(size))
		parts = append(parts, lipgloss.NewStyle().Foreground(ui.ColorError).Bold(true).Render(prompt))
		return strings.Join(parts, "\n")
	}

	parts = append(parts, ui.HintBarStyle().Render("  "+m.help.View(m.keys)))
	return strings.Join(parts, "\n")
}
