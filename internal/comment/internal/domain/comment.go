// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// Comment 访客针对某篇文章的评论
type Comment struct {
	ID int64

	// 评论的文章
	PostID int64

	// 回复的父评论ID，0 表示对文章的直接评论
	ParentID int64

	// 访客署名和邮箱，博客没有注册用户的概念
	Username string
	Email    string

	// 渲染之后的 HTML 内容
	Content string

	// 提交时的客户端信息，审核的时候参考
	IP        string
	UserAgent string

	// 是否已通过审核，没通过的不对外展示
	IsApproved bool

	// 评论时间，评论本身不允许修改
	CreateTime int64
}

// CommentSubmission 访客提交上来的原始评论
type CommentSubmission struct {
	PostID int64

	Username string
	Email    string

	// Markdown 原文，落库之前渲染
	Content string

	// 人机校验
	CaptchaID   string
	CaptchaCode string

	IP        string
	UserAgent string
}
