package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <dir>",
	Short: "按扩展名把目录中的文件整理到分类子目录",
	Long: `将 dir 中的文件（不递归）按扩展名移动到 Imagenes、Documentos 等子目录，
未知扩展名放入兜底分类。分类可以通过配置文件的 categories 扩展。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		counts, res := a.Engine.Organize(args[0])
		a.Record(fmt.Sprintf("organizar carpeta %q", args[0]), res)

		if verbose && len(counts) > 0 {
			t := newTable("Categoría", "Archivos")
			for _, c := range counts {
				t.Row(c.Category, fmt.Sprint(c.Count))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
		}
		return printResult(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(organizeCmd)
}
