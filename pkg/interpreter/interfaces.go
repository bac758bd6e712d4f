package interpreter

import (
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/inspector"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/search"
)

// Backend 命令最终委托的文件操作，*engine.Engine 实现了它
type Backend interface {
	CreateFile(name, dir string) result.Result
	MoveFile(srcName, srcDir, dstName, dstDir string) result.Result
	CopyFile(srcName, srcDir, dstName, dstDir string) result.Result
	DeleteFile(name, dir string) result.Result
	RenameFile(oldName, dir, newName string) result.Result
	CreateDir(name, dir string) result.Result
	DeleteDir(name, dir string) result.Result
	Organize(dir string) ([]classifier.CategoryCount, result.Result)
	Search(dir, pattern string) ([]search.Hit, result.Result)
	Inspect(name, dir string) (inspector.Details, result.Result)
}

type Tokenizer interface {
	Tokenize(line string) []string
}
