package engine

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	home := t.TempDir()
	aliases := pathalias.New(pathalias.DefaultEntries(home, home))
	return New(afero.NewOsFs(), aliases, nil), home
}

func TestEngine_CreateThenSearch(t *testing.T) {
	e, home := newTestEngine(t)

	res := e.CreateFile("x.txt", "descargas")
	require.True(t, res.OK(), res.String())

	hits, res := e.Search("descargas", "x.txt")
	require.True(t, res.OK())
	require.Len(t, hits, 1)
	assert.Equal(t, filepath.Join(home, "Downloads", "x.txt"), hits[0].Path)
	assert.Equal(t, ".txt", hits[0].Extension)
}

func TestEngine_OrganizeMovesByCategory(t *testing.T) {
	e, home := newTestEngine(t)
	require.True(t, e.CreateFile("photo.jpg", "descargas").OK())
	require.True(t, e.CreateFile("notes.md", "descargas").OK())

	counts, res := e.Organize("descargas")
	require.True(t, res.OK(), res.String())
	assert.ElementsMatch(t, []classifier.CategoryCount{
		{Category: "Imagenes", Count: 1},
		{Category: "Documentos", Count: 1},
	}, counts)

	fs := afero.NewOsFs()
	downloads := filepath.Join(home, "Downloads")
	for _, p := range []string{"Imagenes/photo.jpg", "Documentos/notes.md"} {
		ok, err := afero.Exists(fs, filepath.Join(downloads, p))
		require.NoError(t, err)
		assert.True(t, ok, p)
	}
	for _, p := range []string{"photo.jpg", "notes.md"} {
		ok, err := afero.Exists(fs, filepath.Join(downloads, p))
		require.NoError(t, err)
		assert.False(t, ok, p)
	}
}

func TestEngine_OrganizeIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.CreateFile("a.zip", "descargas").OK())

	_, first := e.Organize("descargas")
	require.True(t, first.OK())

	counts, second := e.Organize("descargas")
	assert.Empty(t, counts)
	assert.Equal(t, result.StatusInfo, second.Status)
}

func TestEngine_DeleteMissing(t *testing.T) {
	e, _ := newTestEngine(t)

	res := e.DeleteFile("missing.txt", "descargas")
	assert.True(t, res.Is(result.ClassNotFound))
}

func TestEngine_Inspect(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.CreateFile("vacio.py", "documentos").OK())

	d, res := e.Inspect("vacio.py", "documentos")
	require.True(t, res.OK(), res.String())
	assert.Equal(t, "Codigo", d.Category)
	assert.Zero(t, d.Size)
}

func TestEngine_DefaultRules(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Equal(t, classifier.DefaultFallback, e.Rules().Fallback())
	assert.Equal(t, 9, e.Aliases().Len())
}
