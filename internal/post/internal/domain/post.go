package domain

import "time"

type Post struct {
	ID    int64
	Title string
	Slug  string
	// Markdown 原文
	Content string
	// 渲染后的 HTML，落库前就渲染好
	ContentHTML string
	Abstract    string
	Ctime       time.Time
	Utime       time.Time
}
