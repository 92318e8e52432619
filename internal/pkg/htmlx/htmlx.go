package htmlx

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var imgSrcRegexp = regexp.MustCompile(`(<img[^>]*?\s)src=`)

// StripTags 去掉 HTML 标签，只保留文本内容
func StripTags(content string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

// Abstract 从渲染好的 HTML 里提取摘要，按字符数截断
func Abstract(content string, wordCount int) string {
	return Left(StripTags(content), wordCount)
}

// Left 取字符串前 n 个字符，按 rune 计数，避免把中文截成乱码
func Left(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[:n])
}

// ReplaceImgSrc 只把 img 标签的 src 属性改成 data-src，交给前端懒加载。
// 不能无脑全文替换，否则 srcset、URL 里的 src 或内嵌视频会被改坏
func ReplaceImgSrc(content string) string {
	if strings.TrimSpace(content) == "" {
		return content
	}
	return imgSrcRegexp.ReplaceAllString(content, "${1}data-src=")
}
