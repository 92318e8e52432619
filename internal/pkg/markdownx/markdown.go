package markdownx

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// 统一的 Markdown 渲染管线。
// 不开启 WithUnsafe，正文里的原始 HTML 会被转义，防止评论注入脚本
var md = goldmark.New()

// ToHTML 把 Markdown 渲染成 HTML
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
