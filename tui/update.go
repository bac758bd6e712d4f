package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

// 标题、分隔线、输入框和提示所占的行数
const chromeHeight = 8

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.handleEnterKey()
		case "up":
			m.recallPrevious()
			return m, nil
		case "down":
			m.recallNext()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case resultMsg:
		m.running = false
		m.appendEntry(msg.line, msg.result)
		return m, nil

	case spinner.TickMsg:
		if m.running {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.output, cmd = m.output.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" || m.running {
		return m, nil
	}

	m.input.Reset()
	m.recall = append(m.recall, line)
	m.recallIdx = len(m.recall)

	switch strings.ToLower(line) {
	case cmdExit:
		return m, tea.Quit
	case cmdClear:
		m.entries = nil
		m.refreshOutput()
		return m, nil
	case cmdHelp:
		m.appendEntry(line, result.Info("", "Comandos disponibles:\n%s", strings.Join(m.usages, "\n")))
		return m, nil
	}

	logger.Get().Debug().Str("line", line).Msg("控制台提交命令")
	m.running = true
	return m, tea.Batch(runCommand(m.runner, line), m.spinner.Tick)
}

func (m *model) recallPrevious() {
	if len(m.recall) == 0 || m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *model) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *model) appendEntry(line string, res result.Result) {
	m.entries = append(m.entries, entry{line: line, result: res})
	m.refreshOutput()
}

func (m *model) refreshOutput() {
	m.output.SetContent(m.renderEntries())
	m.output.GotoBottom()
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.input.Width = msg.Width - 4

	height := msg.Height - chromeHeight
	if height < 3 {
		height = 3
	}
	m.output.Width = msg.Width
	m.output.Height = height
	m.ready = true
	m.refreshOutput()
}
