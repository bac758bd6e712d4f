package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
)

var execCmd = &cobra.Command{
	Use:   "exec <words...>",
	Short: "执行一条命令",
	Long: `执行一条命令语言中的语句，例如:

  gestor exec crear archivo '"mi nota.txt"' en descargas
  gestor exec 'buscar "*.pdf" en documentos'

参数会用空格拼接成一行后再解析，带空格的名称需要保留双引号。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	return printResult(cmd.OutOrStdout(), a.Run(strings.Join(args, " ")))
}

func init() {
	rootCmd.AddCommand(execCmd)
}
