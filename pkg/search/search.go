// Package search walks a directory tree and returns the files whose base
// name matches a case-insensitive shell glob.
package search

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/scanner"
)

// NoExtension 文件名没有扩展名时 Hit.Extension 的取值
const NoExtension = "Sin Extensión"

// MatchAll 空模式等价于匹配全部
const MatchAll = "*"

// Hit 单个匹配结果
type Hit struct {
	Path      string  `yaml:"path"`
	Extension string  `yaml:"extension"`
	SizeKB    float64 `yaml:"size_kb"`
	Bytes     int64   `yaml:"bytes"`
}

type Engine struct {
	fs      afero.Fs
	aliases *pathalias.Table
	walker  *scanner.FileWalker
}

func New(fsys afero.Fs, aliases *pathalias.Table) *Engine {
	return &Engine{
		fs:      fsys,
		aliases: aliases,
		walker:  scanner.NewFileWalker(fsys),
	}
}

// Search 递归查找 dir 下文件名匹配 pattern 的文件，结果保持遍历顺序。
// 单个文件 stat 失败时跳过该文件，不中断整个搜索。
func (e *Engine) Search(dir, pattern string) ([]Hit, result.Result) {
	fullPath := e.aliases.Resolve(dir)

	if err := e.walker.CheckDir(fullPath); err != nil {
		class := result.ClassNotADirectory
		if errors.Is(err, fs.ErrNotExist) {
			class = result.ClassNotFound
		}
		return nil, result.Failure(class, err, "Error: La ruta '%s' no es un directorio válido.", fullPath)
	}

	matcher := NewMatcher(pattern)

	hits := []Hit{}
	err := e.walker.Walk(fullPath, func(path string, entry os.FileInfo) error {
		name := entry.Name()
		if !matcher.Match(name) {
			return nil
		}

		info, err := e.fs.Stat(path)
		if err != nil || info.IsDir() {
			logger.Get().Debug().Err(err).Str("path", path).Msg("跳过无法读取的文件")
			return nil
		}

		hits = append(hits, newHit(path, name, info.Size()))
		return nil
	})
	if err != nil {
		logger.Get().Error().Err(err).Str("path", fullPath).Msg("搜索失败")
		return nil, result.Failure(result.ClassIO, err, "Error durante la búsqueda: %v", err)
	}

	logger.Get().Debug().Str("path", fullPath).Str("pattern", matcher.Pattern()).Int("count", len(hits)).Msg("搜索完成")
	return hits, result.Success(fullPath, "Búsqueda finalizada. %d archivos encontrados.", len(hits))
}

func newHit(path, name string, size int64) Hit {
	ext := scanner.Ext(name)
	if ext == "" {
		ext = NoExtension
	}
	return Hit{
		Path:      path,
		Extension: ext,
		SizeKB:    float64(size) / 1024,
		Bytes:     size,
	}
}

// Matcher 大小写不敏感的 shell 通配符，语法与 fnmatch 一致：
// 只有 *、? 和 [...] 是特殊字符，{} 和反斜杠按字面匹配，
// 类中 ! 表示取反而 ^ 是普通字符，没有闭合的 [ 也按字面匹配
type Matcher struct {
	pattern string
	glob    string
}

// NewMatcher 编译模式；空模式匹配全部。任何输入都是合法模式
func NewMatcher(pattern string) *Matcher {
	p := strings.ToLower(pattern)
	if p == "" {
		p = MatchAll
	}
	return &Matcher{pattern: p, glob: translate(p)}
}

func (m *Matcher) Match(name string) bool {
	ok, err := doublestar.Match(m.glob, strings.ToLower(name))
	return err == nil && ok
}

func (m *Matcher) Pattern() string {
	return m.pattern
}

// translate 将 fnmatch 模式改写为等价的 doublestar 模式
func translate(pattern string) string {
	var sb strings.Builder
	n := len(pattern)
	for i := 0; i < n; {
		c := pattern[i]
		i++
		switch c {
		case '*', '?':
			sb.WriteByte(c)
		case '[':
			j := i
			if j < n && pattern[j] == '!' {
				j++
			}
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				sb.WriteString(`\[`)
				continue
			}
			class := pattern[i:j]
			i = j + 1

			sb.WriteByte('[')
			if strings.HasPrefix(class, "!") {
				sb.WriteByte('!')
				class = class[1:]
			}
			for _, r := range class {
				switch r {
				case '\\', ']', '^', '!':
					sb.WriteByte('\\')
				}
				sb.WriteRune(r)
			}
			sb.WriteByte(']')
		case '\\', '{', '}', ']':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
