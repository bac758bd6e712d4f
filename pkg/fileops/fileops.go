// Package fileops implements the single-file and single-directory
// primitives. Every call resolves its short paths through the alias table
// and reports its outcome as a result.Result; nothing is returned as a raw
// error.
package fileops

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

type Ops struct {
	fs      afero.Fs
	aliases *pathalias.Table
}

func New(fsys afero.Fs, aliases *pathalias.Table) *Ops {
	return &Ops{fs: fsys, aliases: aliases}
}

// CreateFile 创建空文件；文件已存在时会被截断为空，不做存在性检查
func (o *Ops) CreateFile(name, dir string) result.Result {
	fullPath := o.aliases.ResolveJoin(dir, name)

	if err := o.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return o.fail(result.ClassIO, err, fullPath, "Error al crear: %v", err)
	}

	f, err := o.fs.Create(fullPath)
	if err != nil {
		return o.fail(result.ClassIO, err, fullPath, "Error al crear: %v", err)
	}
	if err := f.Close(); err != nil {
		return o.fail(result.ClassIO, err, fullPath, "Error al crear: %v", err)
	}

	logger.Get().Debug().Str("path", fullPath).Msg("文件已创建")
	return result.Success(fullPath, "Archivo creado en: %s", fullPath)
}

func (o *Ops) MoveFile(srcName, srcDir, dstName, dstDir string) result.Result {
	src := o.aliases.ResolveJoin(srcDir, srcName)
	dst := o.aliases.ResolveJoin(dstDir, dstName)

	if err := o.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return o.fail(result.ClassIO, err, dst, "Error al mover: %v", err)
	}

	if err := MovePath(o.fs, src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, src, "Error: No se encontró el archivo de origen.")
		}
		return o.fail(result.ClassIO, err, src, "Error al mover: %v", err)
	}

	logger.Get().Debug().Str("source", src).Str("destination", dst).Msg("文件已移动")
	return result.Success(dst, "Archivo movido a: %s", dst)
}

func (o *Ops) CopyFile(srcName, srcDir, dstName, dstDir string) result.Result {
	src := o.aliases.ResolveJoin(srcDir, srcName)
	dst := o.aliases.ResolveJoin(dstDir, dstName)

	if err := o.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return o.fail(result.ClassIO, err, dst, "Error al copiar: %v", err)
	}

	if err := CopyPath(o.fs, src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, src, "Error: No se encontró el archivo de origen.")
		}
		return o.fail(result.ClassIO, err, src, "Error al copiar: %v", err)
	}

	logger.Get().Debug().Str("source", src).Str("destination", dst).Msg("文件已复制")
	return result.Success(dst, "Archivo copiado a: %s", dst)
}

func (o *Ops) DeleteFile(name, dir string) result.Result {
	fullPath := o.aliases.ResolveJoin(dir, name)

	info, err := o.fs.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, fullPath, "Error: No se encontró el archivo.")
		}
		return o.fail(result.ClassIO, err, fullPath, "Error al borrar: %v", err)
	}
	if info.IsDir() {
		return o.fail(result.ClassIO, errIsDirectory, fullPath, "Error al borrar: '%s' es una carpeta.", fullPath)
	}

	if err := o.fs.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, fullPath, "Error: No se encontró el archivo.")
		}
		return o.fail(result.ClassIO, err, fullPath, "Error al borrar: %v", err)
	}

	logger.Get().Debug().Str("path", fullPath).Msg("文件已删除")
	return result.Success(fullPath, "Archivo borrado: %s", fullPath)
}

// RenameFile 在同一目录内重命名
func (o *Ops) RenameFile(oldName, dir, newName string) result.Result {
	base := o.aliases.Resolve(dir)
	oldPath := filepath.Join(base, oldName)
	newPath := filepath.Join(base, newName)

	if _, err := o.fs.Stat(oldPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, oldPath, "Error: No se encontró el archivo.")
		}
		return o.fail(result.ClassIO, err, oldPath, "Error al renombrar: %v", err)
	}

	if err := o.fs.Rename(oldPath, newPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, oldPath, "Error: No se encontró el archivo.")
		}
		return o.fail(result.ClassIO, err, oldPath, "Error al renombrar: %v", err)
	}

	logger.Get().Debug().Str("from", oldPath).Str("to", newPath).Msg("文件已重命名")
	return result.Success(newPath, "Archivo renombrado a: %s", newName)
}

// CreateDir 递归创建目录，已存在时视为成功
func (o *Ops) CreateDir(name, dir string) result.Result {
	fullPath := o.aliases.ResolveJoin(dir, name)

	if err := o.fs.MkdirAll(fullPath, 0755); err != nil {
		return o.fail(result.ClassIO, err, fullPath, "Error al crear carpeta: %v", err)
	}

	logger.Get().Debug().Str("path", fullPath).Msg("目录已创建")
	return result.Success(fullPath, "Carpeta creada en: %s", fullPath)
}

// DeleteDir 递归删除目录及其内容
func (o *Ops) DeleteDir(name, dir string) result.Result {
	fullPath := o.aliases.ResolveJoin(dir, name)

	info, err := o.fs.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return o.fail(result.ClassNotFound, err, fullPath, "Error: No se encontró la carpeta.")
		}
		return o.fail(result.ClassIO, err, fullPath, "Error al borrar carpeta: %v", err)
	}
	if !info.IsDir() {
		return o.fail(result.ClassNotADirectory, nil, fullPath, "Error: '%s' no es una carpeta.", name)
	}

	if err := o.fs.RemoveAll(fullPath); err != nil {
		return o.fail(result.ClassIO, err, fullPath, "Error al borrar carpeta: %v", err)
	}

	logger.Get().Debug().Str("path", fullPath).Msg("目录已删除")
	return result.Success(fullPath, "Carpeta borrada: %s", fullPath)
}

func (o *Ops) fail(class result.Class, err error, path string, format string, args ...any) result.Result {
	logger.Get().Warn().Err(err).Str("path", path).Str("class", string(class)).Msg("文件操作失败")
	return result.Failure(class, err, format, args...)
}
