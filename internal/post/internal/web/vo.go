package web

import (
	"time"

	"github.com/ecodeclub/mblog/internal/post/internal/domain"
)

type CreateReq struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	// Markdown 原文
	Content string `json:"content"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Content  string `json:"content,omitempty"`
	Abstract string `json:"abstract,omitempty"`
	Ctime    string `json:"ctime,omitempty"`
	Utime    string `json:"utime,omitempty"`
}

type PostList struct {
	Posts []Post `json:"posts,omitempty"`
}

func (c CreateReq) toDomain() domain.Post {
	return domain.Post{
		Title:   c.Title,
		Slug:    c.Slug,
		Content: c.Content,
	}
}

func newPost(p domain.Post) Post {
	return Post{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Content:  p.ContentHTML,
		Abstract: p.Abstract,
		Ctime:    p.Ctime.Format(time.DateTime),
		Utime:    p.Utime.Format(time.DateTime),
	}
}

// newListPost 列表页只给摘要，不带正文
func newListPost(p domain.Post) Post {
	res := newPost(p)
	res.Content = ""
	return res
}
