package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

// 控制台内置命令，不交给解释器
const (
	cmdHelp  = "ayuda"
	cmdClear = "limpiar"
	cmdExit  = "salir"
)

// Runner 执行一行命令，*app.App 实现了它
type Runner interface {
	Run(line string) result.Result
}

type entry struct {
	line   string
	result result.Result
}

type model struct {
	runner  Runner
	usages  []string
	input   textinput.Model
	output  viewport.Model
	spinner spinner.Model
	entries []entry
	// 已提交的命令，供上下键回溯
	recall    []string
	recallIdx int
	running   bool
	width     int
	ready     bool
}

func initialModel(runner Runner, usages []string) model {
	input := textinput.New()
	input.Placeholder = `crear archivo "nota.txt" en "descargas"`
	input.Prompt = "> "
	input.PromptStyle = focusedPromptStyle
	input.TextStyle = textStyle
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		runner:  runner,
		usages:  usages,
		input:   input,
		output:  viewport.New(80, 20),
		spinner: s,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}
