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

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc captcha.Service
}

func NewHandler(svc captcha.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 提交评论前先从这里领一个验证码
	server.POST("/captcha/generate", ginx.W(h.Generate))
}

func (h *Handler) Generate(ctx *ginx.Context) (ginx.Result, error) {
	challenge, err := h.svc.Generate(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newChallenge(challenge),
	}, nil
}
