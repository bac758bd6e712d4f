package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看或清空命令历史",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		if a.History == nil {
			return errors.New("el historial está desactivado o no disponible")
		}

		out := cmd.OutOrStdout()
		if historyClear {
			n, err := a.History.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d entradas eliminadas.\n", n)
			return nil
		}

		entries, err := a.History.Recent(historyLimit)
		if err != nil {
			return err
		}

		t := newTable("Fecha", "Comando", "Resultado")
		for _, e := range entries {
			t.Row(e.CreatedAt.Local().Format(time.DateTime), e.Line, e.Outcome().String())
		}
		fmt.Fprintln(out, t.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "显示最近的条数，0 表示全部")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "清空历史")
	rootCmd.AddCommand(historyCmd)
}
