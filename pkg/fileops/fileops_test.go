package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

func newOsOps(t *testing.T) (*Ops, string) {
	t.Helper()
	home := t.TempDir()
	aliases := pathalias.New(pathalias.DefaultEntries(home, filepath.Join(home, "cwd")))
	return New(afero.NewOsFs(), aliases), home
}

func TestCreateFile(t *testing.T) {
	ops, home := newOsOps(t)

	res := ops.CreateFile("nota.txt", "descargas/a/b")
	require.True(t, res.OK(), res.String())

	want := filepath.Join(home, "Downloads", "a", "b", "nota.txt")
	assert.Equal(t, want, res.Path)
	assert.Equal(t, "✅ Archivo creado en: "+want, res.String())

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreateFile_OverwritesSilently(t *testing.T) {
	ops, home := newOsOps(t)
	target := filepath.Join(home, "Documents", "existente.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("contenido previo"), 0644))

	res := ops.CreateFile("existente.txt", "documentos")
	require.True(t, res.OK())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Empty(t, data, "create truncates existing files")
}

func TestMoveFile(t *testing.T) {
	ops, home := newOsOps(t)
	src := filepath.Join(home, "Downloads", "x.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("hola"), 0644))

	res := ops.MoveFile("x.txt", "descargas", "x.txt", "documentos/nuevo")
	require.True(t, res.OK(), res.String())

	dst := filepath.Join(home, "Documents", "nuevo", "x.txt")
	assert.Equal(t, dst, res.Path)
	assert.NoFileExists(t, src)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))
}

func TestMoveFile_SourceNotFound(t *testing.T) {
	ops, _ := newOsOps(t)

	res := ops.MoveFile("nada.txt", "descargas", "nada.txt", "documentos")
	assert.True(t, res.Is(result.ClassNotFound))
	assert.Equal(t, "❌ Error: No se encontró el archivo de origen.", res.String())
}

func TestCopyFile(t *testing.T) {
	ops, home := newOsOps(t)
	src := filepath.Join(home, "Music", "song.mp3")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("ID3"), 0600))

	res := ops.CopyFile("song.mp3", "musica", "song.mp3", "escritorio")
	require.True(t, res.OK(), res.String())

	dst := filepath.Join(home, "Desktop", "song.mp3")
	assert.FileExists(t, src)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCopyFile_Errors(t *testing.T) {
	ops, home := newOsOps(t)

	res := ops.CopyFile("nada.txt", "descargas", "nada.txt", "documentos")
	assert.True(t, res.Is(result.ClassNotFound))

	require.NoError(t, os.MkdirAll(filepath.Join(home, "Downloads", "carpeta"), 0755))
	res = ops.CopyFile("carpeta", "descargas", "carpeta", "documentos")
	assert.True(t, res.Is(result.ClassIO))
	assert.Contains(t, res.Message, "Error al copiar")
}

func TestCopyFile_OntoItself(t *testing.T) {
	home := t.TempDir()
	downloads := filepath.Join(home, "Downloads")
	require.NoError(t, os.MkdirAll(downloads, 0755))
	target := filepath.Join(downloads, "x.txt")
	require.NoError(t, os.WriteFile(target, []byte("precious data"), 0644))

	entries := pathalias.DefaultEntries(home, home)
	mirror := filepath.Join(home, "espejo")
	if err := os.Symlink(downloads, mirror); err == nil {
		entries["espejo"] = mirror
	}
	ops := New(afero.NewOsFs(), pathalias.New(entries))

	res := ops.CopyFile("x.txt", "descargas", "x.txt", "descargas")
	assert.True(t, res.Is(result.ClassIO))
	assert.Contains(t, res.Message, "Error al copiar")
	assert.ErrorIs(t, res.Err, errSameFile)

	if _, ok := entries["espejo"]; ok {
		res = ops.CopyFile("x.txt", "espejo", "x.txt", "descargas")
		assert.True(t, res.Is(result.ClassIO))
		assert.ErrorIs(t, res.Err, errSameFile)
	}

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "precious data", string(data))
}

func TestCopyPath_SamePathOnMemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d/a.txt", []byte("hola"), 0644))

	err := CopyPath(fs, "/d/a.txt", "/d/./a.txt")
	assert.ErrorIs(t, err, errSameFile)

	data, err := afero.ReadFile(fs, "/d/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))
}

func TestDeleteFile(t *testing.T) {
	ops, home := newOsOps(t)
	target := filepath.Join(home, "Downloads", "borrar.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, nil, 0644))

	res := ops.DeleteFile("borrar.txt", "descargas")
	require.True(t, res.OK(), res.String())
	assert.NoFileExists(t, target)

	res = ops.DeleteFile("borrar.txt", "descargas")
	assert.True(t, res.Is(result.ClassNotFound))
	assert.Equal(t, "❌ Error: No se encontró el archivo.", res.String())
}

func TestDeleteFile_Directory(t *testing.T) {
	ops, home := newOsOps(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "Downloads", "dir"), 0755))

	res := ops.DeleteFile("dir", "descargas")
	assert.True(t, res.Is(result.ClassIO))
	assert.DirExists(t, filepath.Join(home, "Downloads", "dir"))
}

func TestRenameFile(t *testing.T) {
	ops, home := newOsOps(t)
	dir := filepath.Join(home, "Documents")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	res := ops.RenameFile("a.txt", "documentos", "b.txt")
	require.True(t, res.OK(), res.String())
	assert.Equal(t, "✅ Archivo renombrado a: b.txt", res.String())
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))

	res = ops.RenameFile("a.txt", "documentos", "c.txt")
	assert.True(t, res.Is(result.ClassNotFound))
}

func TestCreateDir(t *testing.T) {
	ops, home := newOsOps(t)

	res := ops.CreateDir("fotos/2024", "imagenes")
	require.True(t, res.OK(), res.String())
	assert.DirExists(t, filepath.Join(home, "Pictures", "fotos", "2024"))

	again := ops.CreateDir("fotos/2024", "imagenes")
	assert.True(t, again.OK(), "existing directory is a no-op success")
}

func TestDeleteDir(t *testing.T) {
	ops, home := newOsOps(t)
	dir := filepath.Join(home, "Videos", "viejos")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "v.mp4"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "Videos", "suelto.mp4"), nil, 0644))

	res := ops.DeleteDir("viejos", "videos")
	require.True(t, res.OK(), res.String())
	assert.NoDirExists(t, dir)

	res = ops.DeleteDir("viejos", "videos")
	assert.True(t, res.Is(result.ClassNotFound))
	assert.Equal(t, "❌ Error: No se encontró la carpeta.", res.String())

	res = ops.DeleteDir("suelto.mp4", "videos")
	assert.True(t, res.Is(result.ClassNotADirectory))
	assert.Equal(t, "❌ Error: 'suelto.mp4' no es una carpeta.", res.String())
}

func TestOps_AbsoluteDirBypassesAliases(t *testing.T) {
	fs := afero.NewMemMapFs()
	ops := New(fs, pathalias.New(map[string]string{".": "/cwd"}))

	res := ops.CreateFile("a.txt", "/var/data")
	require.True(t, res.OK())

	exists, err := afero.Exists(fs, "/var/data/a.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMovePath_FallsBackToCopy(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := &renameFailFs{Fs: base}
	require.NoError(t, afero.WriteFile(base, "/a/f.txt", []byte("datos"), 0644))
	require.NoError(t, base.MkdirAll("/b", 0755))

	require.NoError(t, MovePath(fs, "/a/f.txt", "/b/f.txt"))

	data, err := afero.ReadFile(base, "/b/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "datos", string(data))

	exists, _ := afero.Exists(base, "/a/f.txt")
	assert.False(t, exists)
}

// renameFailFs 模拟跨卷 rename 失败
type renameFailFs struct {
	afero.Fs
}

func (r *renameFailFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: errCrossDevice}
}

var errCrossDevice = os.ErrInvalid
