package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	Logger  *zerolog.Logger
	logFile *os.File
)

// Init 初始化 zerolog 日志
// level: 日志级别 ("trace", "debug", "info", "warn", "error")，无法识别时使用 info
// file: 日志文件路径，为空时仅输出到 stderr
func Init(level string, file string) error {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		Close()
		logFile = f
		// 文件中保留 JSON 格式，便于后续检索
		output = zerolog.MultiLevelWriter(output, f)
	}

	logger := zerolog.New(output).With().Timestamp().Logger().Level(logLevel)
	Logger = &logger
	return nil
}

// InitWriter 将日志输出到指定 writer，供 TUI 等不能占用终端的宿主使用
func InitWriter(level string, w io.Writer) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(w).With().Timestamp().Logger().Level(logLevel)
	Logger = &logger
}

// Get 返回全局 logger 实例
// 如果 logger 未初始化，返回一个默认的 logger（输出到 /dev/null）
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}

// Close 关闭日志文件（如果有）
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
