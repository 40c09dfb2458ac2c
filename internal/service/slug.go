package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// GenerateSlug 由标题生成 URL 片段：小写、去重音、空白转连字符
// 例如 "Introdução à Programação" → "introducao-a-programacao"
func GenerateSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		plain = strings.ToLower(text)
	}

	plain = slugInvalid.ReplaceAllString(plain, "")
	plain = slugWhitespace.ReplaceAllString(plain, "-")
	return strings.Trim(plain, "-")
}
