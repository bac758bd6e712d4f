// Package pathalias maps short, case-insensitive names such as "descargas"
// onto absolute directory roots and resolves short paths against them.
package pathalias

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CurrentDir is the alias of the process working directory.
const CurrentDir = "."

// Table is immutable after construction and safe for concurrent use.
type Table struct {
	entries map[string]string
}

// New builds a table from the given entries. Keys are lower-cased.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for name, root := range entries {
		t.entries[normalize(name)] = root
	}
	return t
}

// Default builds the standard table from the user's home directory and the
// working directory.
func Default() (*Table, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("获取用户主目录: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("获取当前目录: %w", err)
	}
	return New(DefaultEntries(home, cwd)), nil
}

// DefaultEntries returns the standard aliases rooted at home and cwd.
func DefaultEntries(home, cwd string) map[string]string {
	return map[string]string{
		"descargas":  filepath.Join(home, "Downloads"),
		"escritorio": filepath.Join(home, "Desktop"),
		"documentos": filepath.Join(home, "Documents"),
		"imágenes":   filepath.Join(home, "Pictures"),
		"imagenes":   filepath.Join(home, "Pictures"),
		"musica":     filepath.Join(home, "Music"),
		"música":     filepath.Join(home, "Music"),
		"videos":     filepath.Join(home, "Videos"),
		CurrentDir:   cwd,
	}
}

// With returns a new table holding t's entries plus overrides. Relative
// override roots are resolved against t first, so "proyectos: documentos/dev"
// works.
func (t *Table) With(overrides map[string]string) *Table {
	merged := make(map[string]string, len(t.entries)+len(overrides))
	for name, root := range t.entries {
		merged[name] = root
	}
	for name, root := range overrides {
		if strings.TrimSpace(name) == "" {
			continue
		}
		merged[normalize(name)] = t.Resolve(root)
	}
	return &Table{entries: merged}
}

func (t *Table) Lookup(name string) (string, bool) {
	root, ok := t.entries[normalize(name)]
	return root, ok
}

// Names returns the aliases in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) Len() int {
	return len(t.entries)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
