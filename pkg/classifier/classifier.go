package classifier

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/fileops"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/scanner"
)

// CategoryCount 一次整理中某个分类移动的文件数
type CategoryCount struct {
	Category string `yaml:"category"`
	Count    int    `yaml:"count"`
}

// Organizer 将目录下的文件按扩展名移动到分类子目录（不递归）
type Organizer struct {
	fs      afero.Fs
	aliases *pathalias.Table
	rules   *Table
	walker  *scanner.FileWalker
}

func NewOrganizer(fsys afero.Fs, aliases *pathalias.Table, rules *Table) *Organizer {
	return &Organizer{
		fs:      fsys,
		aliases: aliases,
		rules:   rules,
		walker:  scanner.NewFileWalker(fsys),
	}
}

func (o *Organizer) Rules() *Table {
	return o.rules
}

// Organize 整理 dir 的直接子文件。返回的计数只包含成功移动的文件，
// 顺序为分类第一次出现的顺序。
func (o *Organizer) Organize(dir string) ([]CategoryCount, result.Result) {
	fullPath := o.aliases.Resolve(dir)

	if err := o.walker.CheckDir(fullPath); err != nil {
		class := result.ClassNotADirectory
		if errors.Is(err, fs.ErrNotExist) {
			class = result.ClassNotFound
		}
		return nil, result.Failure(class, err, "Error: La ruta '%s' no es un directorio válido.", fullPath)
	}

	files, err := o.walker.Files(fullPath)
	if err != nil {
		logger.Get().Error().Err(err).Str("path", fullPath).Msg("读取目录失败")
		return nil, result.Failure(result.ClassIO, err, "Error durante la organización: %v", err)
	}

	var counts []CategoryCount
	position := make(map[string]int)
	failed := 0

	for _, info := range files {
		category := o.rules.Category(scanner.Ext(info.Name()))
		source := filepath.Join(fullPath, info.Name())
		categoryDir := filepath.Join(fullPath, category)
		target := filepath.Join(categoryDir, info.Name())

		if source == target {
			continue
		}

		if err := o.fs.MkdirAll(categoryDir, 0755); err != nil {
			logger.Get().Warn().Err(err).Str("path", categoryDir).Msg("创建分类目录失败，跳过文件")
			failed++
			continue
		}

		if err := fileops.MovePath(o.fs, source, target); err != nil {
			logger.Get().Warn().Err(err).Str("source", source).Str("target", target).Msg("移动文件失败，跳过")
			failed++
			continue
		}

		i, ok := position[category]
		if !ok {
			i = len(counts)
			position[category] = i
			counts = append(counts, CategoryCount{Category: category})
		}
		counts[i].Count++

		logger.Get().Debug().Str("file", info.Name()).Str("category", category).Msg("已分类")
	}

	if len(counts) == 0 {
		logger.Get().Info().Str("path", fullPath).Int("failed", failed).Msg("没有需要整理的文件")
		return nil, result.Info(fullPath, "No se encontraron archivos para organizar en '%s'.", fullPath)
	}

	logger.Get().Info().Str("path", fullPath).Int("categories", len(counts)).Int("failed", failed).Msg("整理完成")
	return counts, result.Success(fullPath, "Organización completa: %s.", Summary(counts))
}

// Summary 将计数渲染为 "2 Imagenes, 1 Documentos"
func Summary(counts []CategoryCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, c.Category))
	}
	return strings.Join(parts, ", ")
}
