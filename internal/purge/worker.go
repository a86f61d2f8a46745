package purge

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
)

// ErrBusy is returned when a scan or deletion is already in flight.
var ErrBusy = errors.New("operation already in progress")

// Op identifies the kind of background operation a Result belongs to.
type Op int

const (
	OpScan Op = iota
	OpDelete
)

func (o Op) String() string {
	if o == OpScan {
		return "scan"
	}
	return "delete"
}

// Result is the single completion message of a background operation.
type Result struct {
	Op       Op
	Root     string
	Template string
	Items    []FoundItem
	Warnings []string
	Report   DeletionReport
	Err      error
}

type scanFunc func(root string, tmpl config.Template) ([]FoundItem, []string, error)

func runScan(root string, tmpl config.Template) ([]FoundItem, []string, error) {
	s := NewScanner(tmpl)
	items, err := s.Scan(root)
	return items, s.Warnings(), err
}

// Worker runs at most one scan or deletion at a time on a background
// goroutine and posts exactly one Result per operation on Results().
// Operations cannot be cancelled once started.
type Worker struct {
	registry *config.Registry
	results  chan Result
	scan     scanFunc

	mu   sync.Mutex
	busy bool
}

// NewWorker creates an idle worker resolving template names via registry.
func NewWorker(registry *config.Registry) *Worker {
	return &Worker{
		registry: registry,
		results:  make(chan Result, 1),
		scan:     runScan,
	}
}

// Results delivers one Result per started operation. The worker is already
// idle again when a Result is delivered.
func (w *Worker) Results() <-chan Result {
	return w.results
}

// Busy reports whether an operation is in flight.
func (w *Worker) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

func (w *Worker) acquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return false
	}
	w.busy = true
	return true
}

func (w *Worker) release() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}

// StartScan validates the template and root, then scans in the background.
// Unknown templates and invalid roots are reported here and no scan starts.
func (w *Worker) StartScan(root, templateName string) error {
	if !w.acquire() {
		log.WithField("root", root).Debug("scan rejected, worker busy")
		return ErrBusy
	}

	tmpl, err := w.registry.Lookup(templateName)
	if err != nil {
		w.release()
		return err
	}
	abs, err := ValidateRoot(root)
	if err != nil {
		w.release()
		return err
	}

	go w.run(Result{Op: OpScan, Root: abs, Template: tmpl.Name}, func(r *Result) error {
		items, warnings, err := w.scan(abs, tmpl)
		r.Items = items
		r.Warnings = warnings
		return err
	})
	return nil
}

// StartDelete removes items in the background.
func (w *Worker) StartDelete(items []FoundItem, dryRun bool) error {
	if !w.acquire() {
		return ErrBusy
	}

	batch := append([]FoundItem(nil), items...)
	go w.run(Result{Op: OpDelete}, func(r *Result) error {
		r.Report = Delete(batch, dryRun)
		return nil
	})
	return nil
}

func (w *Worker) run(res Result, fn func(*Result) error) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("%s panicked: %v\nStack: %s", res.Op, p, debug.Stack())
			res.Items = nil
			res.Err = fmt.Errorf("%s failed: %v", res.Op, p)
		}
		w.release()
		w.results <- res
	}()

	res.Err = fn(&res)
}
