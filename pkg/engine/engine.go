// Package engine bundles the file primitives, the organizer, the search
// engine and the inspector behind one value that shares a filesystem and
// an alias table.
package engine

import (
	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/fileops"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/inspector"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/search"
)

type Engine struct {
	*fileops.Ops

	aliases   *pathalias.Table
	rules     *classifier.Table
	organizer *classifier.Organizer
	search    *search.Engine
	inspector *inspector.Inspector
}

func New(fsys afero.Fs, aliases *pathalias.Table, rules *classifier.Table) *Engine {
	if rules == nil {
		rules = classifier.NewTable(classifier.DefaultRules(), classifier.DefaultFallback)
	}
	return &Engine{
		Ops:       fileops.New(fsys, aliases),
		aliases:   aliases,
		rules:     rules,
		organizer: classifier.NewOrganizer(fsys, aliases, rules),
		search:    search.New(fsys, aliases),
		inspector: inspector.New(fsys, aliases, rules),
	}
}

func (e *Engine) Organize(dir string) ([]classifier.CategoryCount, result.Result) {
	return e.organizer.Organize(dir)
}

func (e *Engine) Search(dir, pattern string) ([]search.Hit, result.Result) {
	return e.search.Search(dir, pattern)
}

func (e *Engine) Inspect(name, dir string) (inspector.Details, result.Result) {
	return e.inspector.Inspect(name, dir)
}

func (e *Engine) Aliases() *pathalias.Table {
	return e.aliases
}

func (e *Engine) Rules() *classifier.Table {
	return e.rules
}
