package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/interpreter"
)

var stopOnError bool

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "逐行执行命令脚本",
	Long: `逐行执行脚本文件中的命令，空行和以 # 开头的行会被跳过。
文件名为 "-" 时从标准输入读取。`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	failed, err := a.RunScript(in, stopOnError, func(o interpreter.Outcome) {
		fmt.Fprintf(out, "[%d] %s\n%s\n", o.LineNo, o.Line, o.Result.String())
	})
	if err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

func init() {
	scriptCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "遇到第一条失败的命令时停止")
	rootCmd.AddCommand(scriptCmd)
}
