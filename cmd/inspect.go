package cmd

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <name> <dir>",
	Short: "显示文件的类型、大小、校验和和分类",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := checkFormat(inspectFormat)
		if err != nil {
			return err
		}

		a, err := newApp(app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		d, res := a.Engine.Inspect(args[0], args[1])
		a.Record(fmt.Sprintf("inspeccionar %q en %q", args[0], args[1]), res)

		out := cmd.OutOrStdout()
		if res.Failed() {
			return printResult(out, res)
		}
		if format == formatYAML {
			data, err := yaml.Marshal(d)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		t := newTable("Campo", "Valor")
		t.Row("Ruta", d.Path)
		t.Row("Tamaño", fmt.Sprintf("%d bytes", d.Size))
		t.Row("Extensión", d.Extension)
		t.Row("Tipo", d.MIME)
		t.Row("Categoría", d.Category)
		t.Row("xxhash", d.Checksum)
		t.Row("Modificado", d.ModTime.Format(time.DateTime))
		fmt.Fprintln(out, t.String())
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", formatText, "输出格式: text 或 yaml")
	rootCmd.AddCommand(inspectCmd)
}
