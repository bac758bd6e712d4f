package interpreter

import (
	"strings"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/inspector"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/search"
)

// fakeBackend 记录每次调用，返回预设结果
type fakeBackend struct {
	calls []string
	hits  []search.Hit
	panic string
}

func (f *fakeBackend) record(op string, args ...string) result.Result {
	if f.panic != "" {
		panic(f.panic)
	}
	f.calls = append(f.calls, op+"("+strings.Join(args, ",")+")")
	return result.Success("", "%s ok", op)
}

func (f *fakeBackend) CreateFile(name, dir string) result.Result {
	return f.record("CreateFile", name, dir)
}

func (f *fakeBackend) MoveFile(srcName, srcDir, dstName, dstDir string) result.Result {
	return f.record("MoveFile", srcName, srcDir, dstName, dstDir)
}

func (f *fakeBackend) CopyFile(srcName, srcDir, dstName, dstDir string) result.Result {
	return f.record("CopyFile", srcName, srcDir, dstName, dstDir)
}

func (f *fakeBackend) DeleteFile(name, dir string) result.Result {
	return f.record("DeleteFile", name, dir)
}

func (f *fakeBackend) RenameFile(oldName, dir, newName string) result.Result {
	return f.record("RenameFile", oldName, dir, newName)
}

func (f *fakeBackend) CreateDir(name, dir string) result.Result {
	return f.record("CreateDir", name, dir)
}

func (f *fakeBackend) DeleteDir(name, dir string) result.Result {
	return f.record("DeleteDir", name, dir)
}

func (f *fakeBackend) Organize(dir string) ([]classifier.CategoryCount, result.Result) {
	return nil, f.record("Organize", dir)
}

func (f *fakeBackend) Search(dir, pattern string) ([]search.Hit, result.Result) {
	f.record("Search", dir, pattern)
	return f.hits, result.Success(dir, "Búsqueda finalizada. %d archivos encontrados.", len(f.hits))
}

func (f *fakeBackend) Inspect(name, dir string) (inspector.Details, result.Result) {
	return inspector.Details{}, f.record("Inspect", name, dir)
}
