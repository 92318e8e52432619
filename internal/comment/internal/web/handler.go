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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/comment/internal/domain"
	"github.com/ecodeclub/mblog/internal/comment/internal/service"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/ecodeclub/mblog/internal/settings"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.CommentService
	settingsSvc settings.Service
	tz          timezone.Resolver
}

func NewHandler(svc service.CommentService,
	settingsSvc settings.Service,
	tz timezone.Resolver) *Handler {
	return &Handler{
		svc:         svc,
		settingsSvc: settingsSvc,
		tz:          tz,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.B[CreateCommentReq](h.Create))
	// 只有过了审的评论才会出现在这里
	group.POST("/list", ginx.B[ListCommentsReq](h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/manage/list", ginx.B[PageReq](h.ManageList))
	group.POST("/approval/toggle", ginx.B[ToggleApprovalReq](h.ToggleApproval))
	group.POST("/delete", ginx.B[DeleteCommentsReq](h.Delete))
	group.POST("/reply", ginx.B[ReplyReq](h.Reply))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateCommentReq) (ginx.Result, error) {
	c, err := h.svc.Submit(ctx.Request.Context(), domain.CommentSubmission{
		PostID:      req.PostID,
		Username:    req.Username,
		Email:       req.Email,
		Content:     req.Content,
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
		IP:          ctx.ClientIP(),
		UserAgent:   ctx.Request.UserAgent(),
	})
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidCaptcha):
		return invalidInputResult, err
	case errors.Is(err, service.ErrCommentsClosed):
		return commentsClosedResult, err
	case errors.Is(err, service.ErrCommentNotCreated):
		return commentNotCreatedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	if !c.IsApproved {
		cs, err := h.settingsSvc.Content(ctx.Request.Context())
		if err != nil {
			return systemErrorResult, err
		}
		// 待审核的评论默认不回显内容
		if !cs.EchoPendingComment {
			return ginx.Result{Msg: "OK"}, nil
		}
	}
	return ginx.Result{
		Data: h.toVO(c),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListCommentsReq) (ginx.Result, error) {
	comments, err := h.svc.ListApproved(ctx.Request.Context(), req.PostID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(comments, func(_ int, src domain.Comment) Comment {
			return h.toVO(src)
		}),
	}, nil
}

func (h *Handler) ManageList(ctx *ginx.Context, req PageReq) (ginx.Result, error) {
	comments, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentList{
			List: slice.Map(comments, func(_ int, src domain.Comment) Comment {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) ToggleApproval(ctx *ginx.Context, req ToggleApprovalReq) (ginx.Result, error) {
	id, err := h.svc.ToggleApproval(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrCommentNotFound) {
		return commentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 原样返回ID，前端用来局部刷新
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteCommentsReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.IDs)
	if errors.Is(err, service.ErrNoCommentIDs) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 原样返回删掉的ID集合
	return ginx.Result{
		Data: req.IDs,
	}, nil
}

func (h *Handler) Reply(ctx *ginx.Context, req ReplyReq) (ginx.Result, error) {
	id, err := h.svc.Reply(ctx.Request.Context(), req.PostID, req.ParentID, req.Content)
	if errors.Is(err, service.ErrCommentsClosed) {
		return commentsClosedResult, err
	}
	if errors.Is(err, service.ErrCommentNotCreated) {
		return commentNotCreatedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) toVO(c domain.Comment) Comment {
	return Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		ParentID:   c.ParentID,
		Username:   c.Username,
		Content:    c.Content,
		IsApproved: c.IsApproved,
		CreateTime: h.tz.ToTimeZone(time.UnixMilli(c.CreateTime).UTC()).
			Format("2006-01-02 15:04:05"),
	}
}
