package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🗂  Gestor inteligente de archivos") + "\n")
	b.WriteString(m.output.View() + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", m.separatorWidth())) + "\n")

	if m.running {
		b.WriteString(m.spinner.View() + " Ejecutando...\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(focusedStyle.Render(m.input.View()) + "\n")
	b.WriteString(hintStyle.Render("enter: ejecutar • ↑/↓: historial • ayuda • limpiar • salir"))

	return b.String()
}

func (m *model) renderEntries() string {
	if len(m.entries) == 0 {
		return hintStyle.Render("Escribe un comando o 'ayuda' para ver los disponibles.")
	}

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		blocks = append(blocks, echoStyle.Render("> "+e.line)+"\n"+resultStyle(e.result).Render(e.result.String()))
	}
	return strings.Join(blocks, "\n\n")
}

func resultStyle(r result.Result) lipgloss.Style {
	switch r.Status {
	case result.StatusSuccess:
		return successStyle
	case result.StatusInfo:
		return infoStyle
	default:
		return failureStyle
	}
}

func (m *model) separatorWidth() int {
	if m.width <= 0 {
		return 60
	}
	return m.width
}
