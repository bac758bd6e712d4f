package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "列出可用的路径别名",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(app.Options{NoHistory: true})
		if err != nil {
			return err
		}
		defer a.Close()

		aliases := a.Engine.Aliases()
		t := newTable("Alias", "Ruta")
		for _, name := range aliases.Names() {
			root, _ := aliases.Lookup(name)
			t.Row(name, root)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers(headers...)
}

func init() {
	rootCmd.AddCommand(aliasCmd)
}
