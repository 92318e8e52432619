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

package event

import (
	"context"
	"fmt"
	"html"

	"github.com/ecodeclub/mblog/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

// CommentNotification 新评论通知
type CommentNotification struct {
	// 收件人，站长邮箱
	To string

	PostTitle string
	Username  string
	Email     string
	// 已渲染的 HTML
	Content string
}

// Dispatcher 把通知丢出去就返回，不保证送达
type Dispatcher interface {
	Dispatch(n CommentNotification)
}

type EmailDispatcher struct {
	svc    email.Service
	logger *elog.Component
}

func NewEmailDispatcher(svc email.Service) *EmailDispatcher {
	return &EmailDispatcher{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

// Dispatch 异步发送，只尝试一次，失败只记日志。
// 核心链路不会等它，也感知不到它的结果
func (d *EmailDispatcher) Dispatch(n CommentNotification) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("发送评论通知时 panic", elog.Any("recover", r))
			}
		}()
		// 请求可能早就结束了，不能复用请求的 ctx
		ctx := context.Background()
		err := d.svc.SendMail(ctx, email.Mail{
			To:      n.To,
			Subject: fmt.Sprintf("文章《%s》有新评论", n.PostTitle),
			Body:    []byte(d.body(n)),
		})
		if err != nil {
			d.logger.Error("发送评论通知失败",
				elog.FieldErr(err),
				elog.String("to", n.To))
		}
	}()
}

func (d *EmailDispatcher) body(n CommentNotification) string {
	return fmt.Sprintf(`<p>%s（%s）评论了《%s》：</p>%s`,
		html.EscapeString(n.Username),
		html.EscapeString(n.Email),
		html.EscapeString(n.PostTitle),
		n.Content)
}
