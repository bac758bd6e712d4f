package hasher

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
)

// CalculateHash 流式计算文件内容的 xxhash64
func CalculateHash(fs afero.Fs, filePath string) (uint64, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", filePath)

	file, err := fs.Open(filePath)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("无法打开文件: %s", filePath)
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Get().Error().Err(err).Msgf("计算哈希失败: %s", filePath)
		return 0, err
	}

	sum := hash.Sum64()
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %x", filePath, sum)
	return sum, nil
}

// Checksum 返回 16 位小写十六进制的哈希字符串
func Checksum(fs afero.Fs, filePath string) (string, error) {
	sum, err := CalculateHash(fs, filePath)
	if err != nil {
		return "", err
	}
	return Format(sum), nil
}

func Format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
