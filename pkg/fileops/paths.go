package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
)

// errIsDirectory 对只接受文件的操作传入了目录
var errIsDirectory = errors.New("is a directory")

// errSameFile 复制的源和目标是同一个文件
var errSameFile = errors.New("are the same file")

// MovePath 使用 rename 将 src 移动到 dst；rename 因跨卷等原因失败时复制后删除。
// 源不存在时直接返回 rename 的错误（可用 errors.Is(err, fs.ErrNotExist) 判断）。
func MovePath(fsys afero.Fs, src, dst string) error {
	err := fsys.Rename(src, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return err
	}

	info, statErr := fsys.Stat(src)
	if statErr != nil || info.IsDir() {
		return err
	}

	logger.Get().Debug().
		Err(err).
		Str("source", src).
		Str("destination", dst).
		Msg("直接重命名失败，尝试复制后删除")

	if err := CopyPath(fsys, src, dst); err != nil {
		return err
	}

	if err := fsys.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}
	return nil
}

// CopyPath 复制文件内容并保留权限位，dst 已存在时被覆盖
func CopyPath(fsys afero.Fs, src, dst string) error {
	sourceFile, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", src, errIsDirectory)
	}

	// 目标以 O_TRUNC 打开，同一个文件会在读取前被清空
	if dstInfo, err := fsys.Stat(dst); err == nil && sameFile(src, dst, info, dstInfo) {
		return fmt.Errorf("'%s' and '%s' %w", src, dst, errSameFile)
	}

	destFile, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return fsys.Chmod(dst, info.Mode().Perm())
}

// sameFile 在 OsFs 上按设备和 inode 判断，其它文件系统退化为比较清理后的路径
func sameFile(src, dst string, srcInfo, dstInfo os.FileInfo) bool {
	if os.SameFile(srcInfo, dstInfo) {
		return true
	}
	return filepath.Clean(src) == filepath.Clean(dst)
}
