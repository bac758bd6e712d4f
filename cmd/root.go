package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

var (
	cfgFile string
	verbose bool
)

// errFailed 命令已把失败结果打印出来，只需要以退出码 1 结束
var errFailed = errors.New("command failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gestor",
	Short: "用简短的路径别名管理文件的工具",
	Long: `Gestor 是一个命令行文件管理工具，使用 "descargas"、"documentos" 这样的
别名代替完整路径。

主要功能:
- 创建、移动、复制、重命名、删除文件和目录
- 按扩展名把目录中的文件整理到分类子目录
- 按通配符递归搜索文件
- 逐行执行命令脚本，或在交互式控制台中输入命令
- 记录执行过的命令历史`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认查找 $HOME/.gestor-archivos/config.yaml）")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
}

func newApp(opts app.Options) (*app.App, error) {
	opts.ConfigFile = cfgFile
	opts.Verbose = verbose
	return app.New(&opts)
}

// printResult 输出结果，失败时返回 errFailed
func printResult(w io.Writer, res result.Result) error {
	fmt.Fprintln(w, res.String())
	if res.Failed() {
		return errFailed
	}
	return nil
}
