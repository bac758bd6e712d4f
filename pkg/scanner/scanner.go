package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
)

// ErrNotDirectory 目标存在但不是目录
var ErrNotDirectory = errors.New("not a directory")

type FileWalker struct {
	fs afero.Fs
}

func NewFileWalker(fs afero.Fs) *FileWalker {
	return &FileWalker{fs: fs}
}

// Walk 递归遍历 root 下的所有文件，按目录内名称顺序回调
// 无法读取的条目会被跳过，不会中断遍历。root 本身是指向目录的符号链接时会被跟随，
// 树内的符号链接不会被跟随
func (w *FileWalker) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return afero.Walk(w.fs, w.walkRoot(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Get().Debug().Err(err).Str("path", path).Msg("跳过无法访问的路径")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		return callback(path, info)
	})
}

// walkRoot afero.Walk 用 Lstat 读取根节点，符号链接根会被当成普通文件。
// 末尾加上分隔符后 Lstat 会解析到链接指向的目录。
func (w *FileWalker) walkRoot(root string) string {
	lstater, ok := w.fs.(afero.Lstater)
	if !ok || strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	info, _, err := lstater.LstatIfPossible(root)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return root
	}
	return root + string(filepath.Separator)
}

// Files 返回 dir 的直接子文件（不递归，按名称排序），目录会被忽略。
// 指向普通文件的符号链接算作文件，返回的是目标的信息、链接的名称
func (w *FileWalker) Files(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return nil, err
	}

	files := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := w.fs.Stat(filepath.Join(dir, entry.Name()))
			if err != nil {
				logger.Get().Debug().Err(err).Str("name", entry.Name()).Msg("跳过失效的符号链接")
				continue
			}
			info = target
		}
		if info.Mode().IsRegular() {
			files = append(files, info)
		}
	}
	return files, nil
}

// CheckDir 确认 path 存在且是目录
func (w *FileWalker) CheckDir(path string) error {
	info, err := w.fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	return nil
}

// Ext 返回文件名的扩展名（含点），规则与常见 shell 工具一致：
// 前导的点不算扩展名分隔符，所以 ".bashrc" 没有扩展名
func Ext(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return ""
	}
	return trimmed[idx:]
}
