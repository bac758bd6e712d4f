package app

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/config"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/engine"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/history"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/interpreter"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/pathalias"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

type Options struct {
	ConfigFile string
	Verbose    bool
	// NoHistory 本次运行不读写历史数据库
	NoHistory bool
	// LogWriter 非 nil 时日志写到这里而不是 stderr（TUI 使用）
	LogWriter io.Writer

	// 以下字段供测试替换，为空时使用真实环境
	Fs      afero.Fs
	Aliases *pathalias.Table
}

type App struct {
	Config      *config.Config
	Engine      *engine.Engine
	Interpreter *interpreter.Interpreter
	History     *history.Store
}

// New 按 配置 → 日志 → 别名 → 引擎 → 解释器 → 历史 的顺序组装
func New(opts *Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	if opts.LogWriter != nil {
		logger.InitWriter(logLevel, opts.LogWriter)
	} else if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	logger.Get().Debug().Msg("加载配置完成")

	base := opts.Aliases
	if base == nil {
		if base, err = pathalias.Default(); err != nil {
			return nil, fmt.Errorf("构建路径别名失败: %w", err)
		}
	}
	aliases := base.With(cfg.Aliases)

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	rules := cfg.Rules()
	eng := engine.New(fs, aliases, rules)
	logger.Get().Debug().Int("aliases", aliases.Len()).Int("categories", len(rules.Categories())).Msg("引擎已就绪")

	a := &App{
		Config:      cfg,
		Engine:      eng,
		Interpreter: interpreter.New(eng, interpreter.ExtendedRegistry()),
	}

	if cfg.History.Enabled && !opts.NoHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			// 历史记录不可用时仍然可以执行命令
			logger.Get().Warn().Err(err).Msg("历史数据库不可用，本次不记录")
		} else {
			a.History = store
		}
	}

	return a, nil
}

// Run 执行一行命令并写入历史
func (a *App) Run(line string) result.Result {
	res := a.Interpreter.Execute(line)
	a.Record(line, res)
	return res
}

// RunScript 逐行执行脚本；stopOnError 为 true 时遇到第一条失败的命令即停止。
// 返回值表示是否有命令失败。
func (a *App) RunScript(r io.Reader, stopOnError bool, fn func(interpreter.Outcome)) (bool, error) {
	failed := false
	err := a.Interpreter.RunScript(r, func(o interpreter.Outcome) bool {
		a.Record(o.Line, o.Result)
		if fn != nil {
			fn(o)
		}
		if o.Result.Failed() {
			failed = true
			return !stopOnError
		}
		return true
	})
	return failed, err
}

// Record 写入一条历史；历史不可用时什么也不做
func (a *App) Record(line string, res result.Result) {
	if a.History == nil {
		return
	}
	if _, err := a.History.Record(line, res); err != nil {
		logger.Get().Warn().Err(err).Msg("写入历史记录失败")
	}
}

func (a *App) Close() error {
	var err error
	if a.History != nil {
		err = a.History.Close()
		a.History = nil
	}
	logger.Close()
	return err
}
