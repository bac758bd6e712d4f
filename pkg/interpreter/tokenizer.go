package interpreter

import (
	"regexp"
	"strings"
)

// 引号包住的一段文本，或者任意一段非空白字符
var tokenPattern = regexp.MustCompile(`"[^"]+"|\S+`)

type RegexTokenizer struct{}

func NewTokenizer() *RegexTokenizer {
	return &RegexTokenizer{}
}

// Tokenize 按空白切分，双引号内的空白保留；每个 token 两端的双引号会被去掉
func (RegexTokenizer) Tokenize(line string) []string {
	matches := tokenPattern.FindAllString(line, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.Trim(m, `"`))
	}
	return tokens
}
