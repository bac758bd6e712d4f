package pathalias

import (
	"path/filepath"
	"strings"
)

// Resolve converts a short path ("descargas/fotos") into an absolute one.
//
// Absolute input is returned unchanged. Blank input resolves to the current
// directory alias. When the first segment is not a known alias the original
// input is returned untouched so that literal relative paths keep working;
// any error surfaces later from the filesystem call.
func (t *Table) Resolve(text string) string {
	if filepath.IsAbs(text) {
		return text
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return t.entries[CurrentDir]
	}

	segments := strings.Split(strings.ReplaceAll(trimmed, `\`, "/"), "/")

	root, ok := t.entries[strings.ToLower(segments[0])]
	if !ok {
		return text
	}

	return join(root, segments[1:]...)
}

// ResolveJoin resolves dir and appends name to it.
func (t *Table) ResolveJoin(dir, name string) string {
	return join(t.Resolve(dir), name)
}

// join 逐段拼接，不做 Clean：".."、"." 和末尾的分隔符原样保留。
// 绝对路径的片段会替换掉之前的结果。
func join(base string, parts ...string) string {
	sep := string(filepath.Separator)
	path := base
	for _, p := range parts {
		switch {
		case filepath.IsAbs(p):
			path = p
		case path == "" || strings.HasSuffix(path, sep):
			path += p
		default:
			path += sep + p
		}
	}
	return path
}
