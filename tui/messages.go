package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

// resultMsg 后台命令执行完成
type resultMsg struct {
	line   string
	result result.Result
}

func runCommand(r Runner, line string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{line: line, result: r.Run(line)}
	}
}
