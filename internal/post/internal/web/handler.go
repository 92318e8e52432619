package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/post/internal/domain"
	"github.com/ecodeclub/mblog/internal/post/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/post")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/post/create", ginx.B[CreateReq](h.Create))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, req.toDomain())
	if errors.Is(err, service.ErrDuplicateSlug) {
		return duplicateSlugResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrPostNotFound) {
		return postNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPost(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	postList, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Posts: slice.Map(postList, func(idx int, p domain.Post) Post {
				return newListPost(p)
			}),
		},
	}, nil
}
