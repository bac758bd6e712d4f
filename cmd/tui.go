package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "启动交互式控制台",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 控制台占用整个终端，日志不能写到 stderr
		a, err := newApp(app.Options{LogWriter: io.Discard})
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(a, a.Interpreter.Registry().Usages())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
