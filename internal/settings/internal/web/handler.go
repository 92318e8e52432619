package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/settings/internal/service"
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

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/settings")
	g.POST("/content", ginx.W(h.Content))
	g.POST("/content/save", ginx.B[ContentSettings](h.SaveContent))
	g.POST("/notification", ginx.W(h.Notification))
	g.POST("/notification/save", ginx.B[NotificationSettings](h.SaveNotification))
}

func (h *Handler) Content(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.Content(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newContentSettings(cs),
	}, nil
}

func (h *Handler) SaveContent(ctx *ginx.Context, req ContentSettings) (ginx.Result, error) {
	err := h.svc.SaveContent(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Notification(ctx *ginx.Context) (ginx.Result, error) {
	ns, err := h.svc.Notification(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newNotificationSettings(ns),
	}, nil
}

func (h *Handler) SaveNotification(ctx *ginx.Context, req NotificationSettings) (ginx.Result, error) {
	err := h.svc.SaveNotification(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
