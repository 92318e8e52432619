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

package web

type CreateCommentReq struct {
	PostID   int64  `json:"postID"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// Markdown 原文
	Content     string `json:"content"`
	CaptchaID   string `json:"captchaID"`
	CaptchaCode string `json:"captchaCode"`
}

type ListCommentsReq struct {
	PostID int64 `json:"postID"`
}

type PageReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ToggleApprovalReq struct {
	ID int64 `json:"id"`
}

type DeleteCommentsReq struct {
	IDs []int64 `json:"ids"`
}

type ReplyReq struct {
	PostID   int64  `json:"postID"`
	ParentID int64  `json:"parentID"`
	Content  string `json:"content"`
}

type Comment struct {
	ID       int64 `json:"id"`
	PostID   int64 `json:"postID"`
	ParentID int64 `json:"parentID"`

	Username string `json:"username"`
	// 内容是渲染好的 HTML
	Content string `json:"content"`

	IsApproved bool `json:"isApproved"`

	// 已换算到站点时区的评论时间
	CreateTime string `json:"createTime"`
}

type CommentList struct {
	List  []Comment `json:"list"`
	Total int       `json:"total"`
}
