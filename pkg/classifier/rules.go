package classifier

import "strings"

// DefaultFallback 未匹配扩展名的文件归入的分类
const DefaultFallback = "Otros"

// Rule 分类名称及其扩展名（含前导点）
type Rule struct {
	Category   string   `mapstructure:"name" yaml:"name"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// DefaultRules 默认分类表
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Imagenes", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}},
		{Category: "Documentos", Extensions: []string{".pdf", ".docx", ".xlsx", ".pptx", ".txt", ".csv", ".md"}},
		{Category: "Comprimidos", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
		{Category: "Musica", Extensions: []string{".mp3", ".wav", ".aac", ".flac"}},
		{Category: "Videos", Extensions: []string{".mp4", ".mov", ".avi", ".mkv"}},
		{Category: "Programas", Extensions: []string{".exe", ".msi", ".dmg", ".deb", ".rpm"}},
		{Category: "Codigo", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".c", ".cpp", ".php"}},
	}
}

// MergeRules 将 extra 合并到 base：同名分类（忽略大小写）追加扩展名，新分类追加到末尾
func MergeRules(base, extra []Rule) []Rule {
	merged := make([]Rule, 0, len(base)+len(extra))
	index := make(map[string]int, len(base))

	for _, r := range base {
		index[strings.ToLower(r.Category)] = len(merged)
		merged = append(merged, Rule{Category: r.Category, Extensions: append([]string(nil), r.Extensions...)})
	}

	for _, r := range extra {
		if strings.TrimSpace(r.Category) == "" {
			continue
		}
		key := strings.ToLower(r.Category)
		if i, ok := index[key]; ok {
			merged[i].Extensions = append(merged[i].Extensions, r.Extensions...)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, Rule{Category: r.Category, Extensions: append([]string(nil), r.Extensions...)})
	}

	return merged
}

// Table 扩展名到分类的只读映射，构建后不可修改
type Table struct {
	byExt    map[string]string
	order    []string
	fallback string
}

// NewTable 根据规则构建映射，扩展名统一小写并补全前导点；
// 同一扩展名出现多次时以后出现的规则为准
func NewTable(rules []Rule, fallback string) *Table {
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}

	t := &Table{
		byExt:    make(map[string]string),
		fallback: fallback,
	}

	for _, r := range rules {
		t.order = append(t.order, r.Category)
		for _, ext := range r.Extensions {
			t.byExt[normalizeExt(ext)] = r.Category
		}
	}

	return t
}

// Category 返回扩展名对应的分类，未知或为空时返回兜底分类
func (t *Table) Category(ext string) string {
	if ext == "" {
		return t.fallback
	}
	if category, ok := t.byExt[normalizeExt(ext)]; ok {
		return category
	}
	return t.fallback
}

func (t *Table) Fallback() string {
	return t.fallback
}

// Categories 按规则顺序返回分类名称（不含兜底分类）
func (t *Table) Categories() []string {
	return append([]string(nil), t.order...)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
