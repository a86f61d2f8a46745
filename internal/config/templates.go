package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTemplate is returned when a template name is not registered.
var ErrUnknownTemplate = errors.New("unknown template")

// Template describes what counts as disposable for one kind of project.
type Template struct {
	// Name is the unique identifier shown to the user (e.g. "Next.js").
	Name string

	// Folders lists directory names that are removed as a whole.
	Folders []string

	// Files lists exact file names or single-wildcard patterns. Only a
	// leading "*" (suffix match) or a trailing "*" (prefix match) is
	// supported; a "*" anywhere else never matches.
	Files []string
}

// HasFolder reports whether name is one of the template's target folders.
func (t Template) HasFolder(name string) bool {
	for _, f := range t.Folders {
		if f == name {
			return true
		}
	}
	return false
}

// UnsupportedPatterns returns the file patterns that can never match because
// the wildcard is not at either end.
func (t Template) UnsupportedPatterns() []string {
	var out []string
	for _, p := range t.Files {
		i := strings.Index(p, "*")
		if i < 0 || strings.HasPrefix(p, "*") || strings.HasSuffix(p, "*") {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ─── Built-ins ───────────────────────────────────────────────────────────────

// BuiltinTemplates returns the stock templates in display order.
func BuiltinTemplates() []Template {
	return []Template{
		{
			Name:    "Next.js",
			Folders: []string{".next", "node_modules", "dist", "build", ".cache"},
			Files:   []string{"package-lock.json", "yarn.lock", ".env.local", ".env.development.local"},
		},
		{
			Name:    "React",
			Folders: []string{"build", "node_modules", "dist", ".cache"},
			Files:   []string{"package-lock.json", "yarn.lock", ".env.local"},
		},
		{
			Name:    "Vite",
			Folders: []string{"dist", "node_modules", ".vite", "build"},
			Files:   []string{"package-lock.json", "yarn.lock", ".env.local"},
		},
		{
			Name:    "Python",
			Folders: []string{"__pycache__", ".venv", "venv", "env", ".pytest_cache", "dist", "build"},
			Files:   []string{"poetry.lock", "Pipfile.lock", ".coverage", "*.pyc", "*.pyo"},
		},
		{
			Name:    "Node.js",
			Folders: []string{"node_modules", "dist", "build", ".cache", ".npm"},
			Files:   []string{"package-lock.json", "yarn.lock", "npm-debug.log", "*.log"},
		},
	}
}

// ─── Registry ────────────────────────────────────────────────────────────────

// Registry maps template names to templates. It is built once at startup and
// never modified afterwards.
type Registry struct {
	templates []Template
	byName    map[string]int
}

// NewRegistry builds a registry from the built-ins followed by extra. An
// extra template with the same name as an earlier one replaces it in place.
func NewRegistry(extra ...Template) *Registry {
	r := &Registry{byName: make(map[string]int)}
	for _, t := range BuiltinTemplates() {
		r.add(t)
	}
	for _, t := range extra {
		r.add(t)
	}
	return r
}

func (r *Registry) add(t Template) {
	if i, ok := r.byName[t.Name]; ok {
		r.templates[i] = t
		return
	}
	r.byName[t.Name] = len(r.templates)
	r.templates = append(r.templates, t)
}

// Lookup returns the template registered under name. Exact names win; a
// case-insensitive match is accepted otherwise so "python" finds "Python".
func (r *Registry) Lookup(name string) (Template, error) {
	if i, ok := r.byName[name]; ok {
		return r.templates[i], nil
	}
	for _, t := range r.templates {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// Names returns the registered template names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.templates))
	for i, t := range r.templates {
		names[i] = t.Name
	}
	return names
}

// Templates returns a copy of all registered templates.
func (r *Registry) Templates() []Template {
	return append([]Template(nil), r.templates...)
}
