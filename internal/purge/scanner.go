package purge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid scan root")

// bypassDirs are heavy or uninteresting trees. Once the walk is inside one of
// them it only records direct children that are template folders.
var bypassDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".venv":        true,
}

const maxWarnings = 500

// Scanner walks a project tree looking for a template's folders and files.
type Scanner struct {
	tmpl         config.Template
	mu           sync.Mutex
	warnings     []string
	scannedCount atomic.Int64
}

// NewScanner creates a scanner for the given template.
func NewScanner(tmpl config.Template) *Scanner {
	return &Scanner{tmpl: tmpl}
}

// Scan is a convenience wrapper for NewScanner(tmpl).Scan(root).
func Scan(root string, tmpl config.Template) ([]FoundItem, error) {
	return NewScanner(tmpl).Scan(root)
}

// Warnings returns the subdirectories that could not be read.
func (s *Scanner) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

// ScannedCount returns the number of entries visited so far.
func (s *Scanner) ScannedCount() int64 {
	return s.scannedCount.Load()
}

func (s *Scanner) addWarning(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.warnings) < maxWarnings {
		s.warnings = append(s.warnings, msg)
	}
}

// ValidateRoot resolves root to an absolute path and checks it is a directory.
func ValidateRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}
	return abs, nil
}

// Scan walks root and returns every template folder and matching file found.
// Matched folders are never descended into, so no item is ever nested inside
// another. The order of the returned items is unspecified.
func (s *Scanner) Scan(root string) ([]FoundItem, error) {
	abs, err := ValidateRoot(root)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"root":     abs,
		"template": s.tmpl.Name,
	}).Debug("scan started")

	var items []FoundItem
	if err := s.scanDir(abs, abs, &items); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", abs, err)
	}

	log.WithFields(log.Fields{
		"root":    abs,
		"found":   len(items),
		"scanned": s.ScannedCount(),
	}).Debug("scan finished")
	return items, nil
}

// scanDir processes one directory. Only an error reading dir itself is
// returned; failures below it become warnings.
func (s *Scanner) scanDir(root, dir string, items *[]FoundItem) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	bypassed := s.isBypassed(root, dir)

	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)
		s.scannedCount.Add(1)

		switch {
		case e.IsDir():
			if s.tmpl.HasFolder(name) {
				*items = append(*items, newItem(root, path, KindFolder, FolderSize(path)))
				continue
			}
			if bypassed {
				continue
			}
			if err := s.scanDir(root, path, items); err != nil {
				s.addWarning("cannot read " + path + ": " + err.Error())
				log.WithError(err).WithField("path", path).Debug("skipping unreadable directory")
			}

		case e.Type().IsRegular():
			if bypassed || !Matches(name, s.tmpl.Files) {
				continue
			}
			var size int64
			if info, err := e.Info(); err == nil {
				size = info.Size()
			}
			*items = append(*items, newItem(root, path, KindFile, size))
		}
	}
	return nil
}

// isBypassed reports whether dir lies inside a bypass tree. A directory whose
// own name is a template folder is never bypassed.
func (s *Scanner) isBypassed(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return false
	}
	if s.tmpl.HasFolder(filepath.Base(dir)) {
		return false
	}
	for _, seg := range strings.Split(rel, string(filepath.Separator)) {
		if bypassDirs[seg] {
			return true
		}
	}
	return false
}

func newItem(root, path string, kind Kind, size int64) FoundItem {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	log.WithFields(log.Fields{"path": rel, "kind": kind, "size": size}).Debug("match")
	return FoundItem{
		Path:     path,
		RelPath:  rel,
		Kind:     kind,
		Size:     size,
		Selected: true,
	}
}
