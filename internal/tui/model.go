package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
	"github.com/lakshaymaurya-felt/projclean/internal/core"
	"github.com/lakshaymaurya-felt/projclean/internal/purge"
	"github.com/lakshaymaurya-felt/projclean/internal/selection"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type resultMsg purge.Result

// waitForResult blocks on the worker's completion channel and hands the
// single Result back to Update.
func waitForResult(w *purge.Worker) tea.Cmd {
	return func() tea.Msg {
		return resultMsg(<-w.Results())
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

type phase int

const (
	phaseIdle phase = iota
	phaseScanning
	phaseConfirm
	phaseDeleting
)

// Options configures a cleaner session.
type Options struct {
	Root         string
	Template     string
	Registry     *config.Registry
	DryRun       bool
	Confirm      bool
	ErrorPreview int
}

// Model is the bubbletea Model for the interactive cleaner. Only Update
// mutates the selection store, and only while no operation is in flight.
type Model struct {
	opts      Options
	worker    *purge.Worker
	store     *selection.Store
	templates []string
	tmplIdx   int

	phase    phase
	cursor   int
	offset   int
	width    int
	height   int
	sortMode selection.SortMode
	quitting bool

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	root     string
	warnings []string
	volume   *core.VolumeUsage
	notice   string
	err      error
}

// New creates the model and starts the first scan.
func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = sp.Style.Foreground(clrCursor)

	m := Model{
		opts:      opts,
		worker:    purge.NewWorker(opts.Registry),
		store:     selection.NewStore(),
		templates: opts.Registry.Names(),
		width:     80,
		height:    24,
		spinner:   sp,
		help:      help.New(),
		keys:      newKeyMap(),
		root:      opts.Root,
	}
	tmpl, err := opts.Registry.Lookup(opts.Template)
	if err != nil {
		m.err = err
		return m
	}
	for i, name := range m.templates {
		if name == tmpl.Name {
			m.tmplIdx = i
		}
	}
	m.startScan()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseScanning {
		return tea.Batch(m.spinner.Tick, waitForResult(m.worker))
	}
	return nil
}

// Template returns the name of the active template.
func (m Model) Template() string {
	if len(m.templates) == 0 {
		return m.opts.Template
	}
	return m.templates[m.tmplIdx]
}

// Err returns the last scan-level error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) busy() bool {
	return m.phase == phaseScanning || m.phase == phaseDeleting
}

// startScan asks the worker for a fresh scan. Bad input is reported straight
// away and leaves the model idle.
func (m *Model) startScan() bool {
	if err := m.worker.StartScan(m.opts.Root, m.Template()); err != nil {
		if !errors.Is(err, purge.ErrBusy) {
			m.err = err
		}
		return false
	}
	m.err = nil
	m.phase = phaseScanning
	return true
}

func (m *Model) startDelete() bool {
	if err := m.worker.StartDelete(m.store.Selected(), m.opts.DryRun); err != nil {
		m.err = err
		return false
	}
	m.phase = phaseDeleting
	return true
}

func (m Model) busyCmds() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.worker))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		return m.handleResult(purge.Result(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleResult(res purge.Result) (tea.Model, tea.Cmd) {
	m.phase = phaseIdle

	switch res.Op {
	case purge.OpScan:
		if res.Err != nil {
			m.err = fmt.Errorf("scan failed: %w", res.Err)
			m.store.ReplaceAll(nil)
			m.cursor, m.offset = 0, 0
			return m, nil
		}
		m.root = res.Root
		m.warnings = res.Warnings
		m.store.ReplaceAll(res.Items)
		m.store.SortBy(m.sortMode)
		m.clampCursor()
		if usage, err := core.GetVolumeUsage(res.Root); err == nil {
			m.volume = &usage
		} else {
			log.WithError(err).Debug("volume usage unavailable")
		}
		return m, nil

	case purge.OpDelete:
		m.notice = res.Report.Summary(m.opts.ErrorPreview)
		if res.Err != nil {
			m.err = res.Err
		}
		// Deleted items are stale now; rescan for a consistent view.
		if m.startScan() {
			return m, m.busyCmds()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseScanning:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case phaseDeleting:
		// Deletion runs to completion; only ctrl+c leaves early.
		return m, nil

	case phaseConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if m.startDelete() {
				return m, m.busyCmds()
			}
			m.phase = phaseIdle
		case key.Matches(msg, m.keys.Cancel):
			m.phase = phaseIdle
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Toggle):
		m.store.Toggle(m.cursor)

	case key.Matches(msg, m.keys.SelectAll):
		m.store.SelectAll()

	case key.Matches(msg, m.keys.DeselectAll):
		m.store.DeselectAll()

	case key.Matches(msg, m.keys.Sort):
		if m.sortMode == selection.SortBySize {
			m.sortMode = selection.SortByPath
		} else {
			m.sortMode = selection.SortBySize
		}
		m.store.SortBy(m.sortMode)

	case key.Matches(msg, m.keys.Template):
		if len(m.templates) > 0 {
			m.tmplIdx = (m.tmplIdx + 1) % len(m.templates)
		}
		m.notice = ""
		if m.startScan() {
			return m, m.busyCmds()
		}

	case key.Matches(msg, m.keys.Rescan):
		m.notice = ""
		if m.startScan() {
			return m, m.busyCmds()
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.store.Selected()) == 0 {
			m.notice = "No items selected for deletion."
			return m, nil
		}
		if m.opts.Confirm {
			m.phase = phaseConfirm
			return m, nil
		}
		if m.startDelete() {
			return m, m.busyCmds()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) clampCursor() {
	if m.cursor >= m.store.Len() {
		m.cursor = m.store.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 10 // header (5) + footer (4) + padding
	if h < 1 {
		h = 1
	}
	return h
}

// Run starts the interactive cleaner and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	if m.phase != phaseScanning {
		return m.Err()
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
