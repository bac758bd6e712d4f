package interpreter

import (
	"fmt"
	"strings"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/search"
)

// DefaultRegistry 七个基础动词
func DefaultRegistry() *Registry {
	return NewRegistry(
		Command{
			Name:      "crear",
			MinTokens: 5,
			Literals:  map[int]string{1: "archivo"},
			Usage:     `crear archivo "nombre.txt" en "descargas/a"`,
			Run: func(b Backend, t []string) result.Result {
				return b.CreateFile(t[2], t[4])
			},
		},
		Command{
			Name:      "mover",
			MinTokens: 6,
			Usage:     `mover "nombre.txt" desde "descargas" hasta "documentos"`,
			Run: func(b Backend, t []string) result.Result {
				return b.MoveFile(t[1], t[3], t[1], t[5])
			},
		},
		Command{
			Name:      "copiar",
			MinTokens: 6,
			Usage:     `copiar "nombre.txt" desde "descargas" hasta "documentos"`,
			Run: func(b Backend, t []string) result.Result {
				return b.CopyFile(t[1], t[3], t[1], t[5])
			},
		},
		Command{
			Name:      "renombrar",
			MinTokens: 6,
			Usage:     `renombrar "a.txt" a "b.txt" en "documentos"`,
			Run: func(b Backend, t []string) result.Result {
				return b.RenameFile(t[1], t[5], t[3])
			},
		},
		Command{
			Name:      "borrar",
			MinTokens: 4,
			Usage:     `borrar "nombre.txt" en "descargas/a"`,
			Run: func(b Backend, t []string) result.Result {
				return b.DeleteFile(t[1], t[3])
			},
		},
		Command{
			Name:      "organizar",
			MinTokens: 3,
			Literals:  map[int]string{1: "carpeta"},
			Usage:     `organizar carpeta "descargas"`,
			Run: func(b Backend, t []string) result.Result {
				_, res := b.Organize(t[2])
				return res
			},
		},
		Command{
			Name:      "buscar",
			MinTokens: 4,
			Usage:     `buscar "palabra" en "descargas/a"`,
			Run: func(b Backend, t []string) result.Result {
				return FormatSearch(b.Search(t[3], t[1]))
			},
		},
	)
}

// ExtendedRegistry 在基础动词之上增加目录管理和文件详情
func ExtendedRegistry() *Registry {
	return DefaultRegistry().With(
		Command{
			Name:      "carpeta",
			MinTokens: 5,
			Usage:     `carpeta crear|borrar "nombre" en "descargas"`,
			Run: func(b Backend, t []string) result.Result {
				switch strings.ToLower(t[1]) {
				case "crear":
					return b.CreateDir(t[2], t[4])
				case "borrar":
					return b.DeleteDir(t[2], t[4])
				}
				return usageFailure(`carpeta crear|borrar "nombre" en "descargas"`)
			},
		},
		Command{
			Name:      "inspeccionar",
			MinTokens: 4,
			Usage:     `inspeccionar "nombre.txt" en "descargas"`,
			Run: func(b Backend, t []string) result.Result {
				_, res := b.Inspect(t[1], t[3])
				return res
			},
		},
	)
}

// FormatSearch 没有命中时原样返回搜索结果，否则在摘要后逐行列出路径和大小
func FormatSearch(hits []search.Hit, res result.Result) result.Result {
	if len(hits) == 0 {
		return res
	}

	var sb strings.Builder
	sb.WriteString(res.Message)
	for _, h := range hits {
		fmt.Fprintf(&sb, "\nRuta: %s (%.2f KB)", h.Path, h.SizeKB)
	}
	res.Message = sb.String()
	return res
}

func usageFailure(usage string) result.Result {
	return result.Failure(result.ClassInvalidUsage, nil, "Uso: %s", usage)
}
