package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/classifier"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/history"
)

// EnvPrefix 环境变量前缀，例如 GESTOR_LOGGING_LEVEL=debug
const EnvPrefix = "GESTOR"

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Aliases          map[string]string
	Categories       []classifier.Rule
	FallbackCategory string `mapstructure:"fallback_category"`
	History          struct {
		Enabled bool
		Path    string
	}
}

var cfg Config

// Load 读取配置：file 非空时只读该文件，否则在默认目录中查找 config.yaml。
// 找不到配置文件不算错误，使用默认值。
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.gestor-archivos")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/gestor-archivos")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("fallback_category", classifier.DefaultFallback)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", history.DefaultPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, err
	}

	cfg = loaded
	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

// Rules 默认分类表合并配置中的 categories 之后的结果
func (c *Config) Rules() *classifier.Table {
	return classifier.NewTable(classifier.MergeRules(classifier.DefaultRules(), c.Categories), c.FallbackCategory)
}
