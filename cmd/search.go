package cmd

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/app"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/interpreter"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/search"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var searchFormat string

var searchCmd = &cobra.Command{
	Use:   "search <dir> [pattern]",
	Short: "按通配符递归搜索文件",
	Long: `在 dir 及其子目录中查找文件名匹配 pattern 的文件，大小写不敏感。
pattern 按 shell 通配符解释：*、?、[seq]、[!seq]；{}、\ 和未闭合的 [ 都是普通字符。
省略时匹配全部文件。`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

type searchReport struct {
	Directory string       `yaml:"directory"`
	Pattern   string       `yaml:"pattern"`
	Count     int          `yaml:"count"`
	Hits      []search.Hit `yaml:"hits"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := checkFormat(searchFormat)
	if err != nil {
		return err
	}

	dir, pattern := args[0], ""
	if len(args) == 2 {
		pattern = args[1]
	}

	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	hits, res := a.Engine.Search(dir, pattern)
	a.Record(fmt.Sprintf("buscar %q en %q", pattern, dir), res)

	out := cmd.OutOrStdout()
	if res.Failed() || format == formatText {
		return printResult(out, interpreter.FormatSearch(hits, res))
	}

	data, err := yaml.Marshal(searchReport{
		Directory: res.Path,
		Pattern:   pattern,
		Count:     len(hits),
		Hits:      hits,
	})
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// checkFormat 校验 --format 并返回小写形式
func checkFormat(format string) (string, error) {
	f := strings.ToLower(format)
	switch f {
	case formatText, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("formato no soportado %q (text|yaml)", format)
}

func init() {
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", formatText, "输出格式: text 或 yaml")
	rootCmd.AddCommand(searchCmd)
}
