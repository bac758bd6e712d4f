package interpreter

import (
	"strings"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

// Handler 执行一条已通过形状校验的命令，tokens[0] 是命令名
type Handler func(b Backend, tokens []string) result.Result

// Command 描述一个动词：最少 token 数、固定位置上必须出现的字面量以及用法示例
type Command struct {
	Name      string
	MinTokens int
	Literals  map[int]string
	Usage     string
	Run       Handler
}

// validate 只检查 token 数量和 Literals 中列出的位置，其余连接词（en、desde、a）不校验
func (c Command) validate(tokens []string) bool {
	if len(tokens) < c.MinTokens {
		return false
	}
	for pos, want := range c.Literals {
		if pos >= len(tokens) || !strings.EqualFold(tokens[pos], want) {
			return false
		}
	}
	return true
}

// Registry 命令表，构建后不可修改，可在多个解释器之间共享
type Registry struct {
	commands map[string]Command
	order    []string
}

func NewRegistry(commands ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(commands))}
	for _, c := range commands {
		r.add(c)
	}
	return r
}

func (r *Registry) add(c Command) {
	name := strings.ToLower(c.Name)
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	c.Name = name
	r.commands[name] = c
}

// With 返回包含额外命令的新表，同名命令会被覆盖
func (r *Registry) With(commands ...Command) *Registry {
	next := &Registry{
		commands: make(map[string]Command, len(r.commands)+len(commands)),
		order:    append([]string(nil), r.order...),
	}
	for name, c := range r.commands {
		next.commands[name] = c
	}
	for _, c := range commands {
		next.add(c)
	}
	return next
}

func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[strings.ToLower(name)]
	return c, ok
}

// Names 按注册顺序返回命令名
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Usages 按注册顺序返回每个命令的用法示例
func (r *Registry) Usages() []string {
	usages := make([]string, 0, len(r.order))
	for _, name := range r.order {
		usages = append(usages, r.commands[name].Usage)
	}
	return usages
}

func (r *Registry) Len() int {
	return len(r.commands)
}
