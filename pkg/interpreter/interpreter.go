// Package interpreter turns one line of the command language into a call
// on a Backend. The first token, lower-cased, selects a command from the
// registry; the remaining tokens are positional.
package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

type Interpreter struct {
	backend   Backend
	registry  *Registry
	tokenizer Tokenizer
}

// New 创建解释器；registry 为 nil 时使用 DefaultRegistry
func New(backend Backend, registry *Registry) *Interpreter {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Interpreter{
		backend:   backend,
		registry:  registry,
		tokenizer: NewTokenizer(),
	}
}

func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// Execute 执行一行命令，任何失败（包括处理函数 panic）都以 Result 返回
func (i *Interpreter) Execute(line string) (res result.Result) {
	tokens := i.tokenizer.Tokenize(line)
	if len(tokens) == 0 {
		return result.Failure(result.ClassInvalidUsage, nil, "No se detectaron comandos válidos.")
	}

	name := strings.ToLower(tokens[0])
	cmd, ok := i.registry.Lookup(name)
	if !ok {
		logger.Get().Debug().Str("command", name).Msg("未知命令")
		return result.Failure(result.ClassUnknownCommand, nil, "Comando desconocido: %s", name)
	}

	if !cmd.validate(tokens) {
		return usageFailure(cmd.Usage)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error().Str("command", name).Interface("panic", r).Msg("命令执行异常")
			res = result.Failure(result.ClassInternal, fmt.Errorf("%v", r), "Error ejecutando '%s': %v", name, r)
		}
	}()

	logger.Get().Debug().Str("command", name).Strs("args", tokens[1:]).Msg("执行命令")
	return cmd.Run(i.backend, tokens)
}

// Outcome 脚本中一行命令的执行结果，LineNo 从 1 开始
type Outcome struct {
	LineNo int
	Line   string
	Result result.Result
}

// RunScript 逐行执行脚本，空行和以 # 开头的行被跳过；fn 返回 false 时停止
func (i *Interpreter) RunScript(r io.Reader, fn func(Outcome) bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out := Outcome{LineNo: lineNo, Line: line, Result: i.Execute(line)}
		if !fn(out) {
			logger.Get().Info().Int("line", lineNo).Msg("脚本在失败处停止")
			return nil
		}
	}
	return scanner.Err()
}

// ExecuteScript 执行整个脚本并返回每一行的结果
func (i *Interpreter) ExecuteScript(r io.Reader) ([]Outcome, error) {
	var outcomes []Outcome
	err := i.RunScript(r, func(o Outcome) bool {
		outcomes = append(outcomes, o)
		return true
	})
	return outcomes, err
}
