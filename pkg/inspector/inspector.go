// Package inspector reports what a single file is: its size, detected
// content type, checksum and the category the organizer would give it.
package inspector

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/hasher"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/scanner"
)

// HeaderSize filetype 识别魔数所需的最大字节数
const HeaderSize = 261

var errIsDirectory = errors.New("is a directory")

type Details struct {
	Path      string    `yaml:"path"`
	Size      int64     `yaml:"size"`
	Extension string    `yaml:"extension"`
	MIME      string    `yaml:"mime"`
	Category  string    `yaml:"category"`
	Checksum  string    `yaml:"checksum"`
	ModTime   time.Time `yaml:"mod_time"`
}

type Inspector struct {
	fs      afero.Fs
	aliases *pathalias.Table
	rules   *classifier.Table
}

func New(fsys afero.Fs, aliases *pathalias.Table, rules *classifier.Table) *Inspector {
	return &Inspector{fs: fsys, aliases: aliases, rules: rules}
}

func (i *Inspector) Inspect(name, dir string) (Details, result.Result) {
	fullPath := i.aliases.ResolveJoin(dir, name)

	info, err := i.fs.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Details{}, i.fail(result.ClassNotFound, err, fullPath, "Error: No se encontró el archivo.")
		}
		return Details{}, i.fail(result.ClassIO, err, fullPath, "Error al inspeccionar: %v", err)
	}
	if info.IsDir() {
		return Details{}, i.fail(result.ClassIO, errIsDirectory, fullPath, "Error al inspeccionar: '%s' es una carpeta.", fullPath)
	}

	head, err := i.readHeader(fullPath)
	if err != nil {
		return Details{}, i.fail(result.ClassIO, err, fullPath, "Error al inspeccionar: %v", err)
	}

	checksum, err := hasher.Checksum(i.fs, fullPath)
	if err != nil {
		return Details{}, i.fail(result.ClassIO, err, fullPath, "Error al inspeccionar: %v", err)
	}

	ext := scanner.Ext(info.Name())
	d := Details{
		Path:      fullPath,
		Size:      info.Size(),
		Extension: ext,
		MIME:      DetectMIME(head),
		Category:  i.rules.Category(ext),
		Checksum:  checksum,
		ModTime:   info.ModTime(),
	}

	logger.Get().Debug().Str("path", fullPath).Str("mime", d.MIME).Str("category", d.Category).Msg("文件检查完成")
	return d, result.Success(fullPath, "%s: %s, %d bytes, categoría %s, xxhash %s",
		fullPath, d.MIME, d.Size, d.Category, d.Checksum)
}

// DetectMIME 优先用魔数识别二进制格式，识别不了时交给 mimetype 做文本检测
func DetectMIME(head []byte) string {
	kind, err := filetype.Match(head)
	if err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return mimetype.Detect(head).String()
}

func (i *Inspector) readHeader(filePath string) ([]byte, error) {
	file, err := i.fs.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	head := make([]byte, HeaderSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("读取文件头部失败: %w", err)
	}
	return head[:n], nil
}

func (i *Inspector) fail(class result.Class, err error, path, format string, args ...any) result.Result {
	logger.Get().Warn().Err(err).Str("path", path).Msg("文件检查失败")
	return result.Failure(class, err, format, args...)
}
