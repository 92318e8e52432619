package middleware

import (
	"github.com/ecodeclub/mblog/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

type DNTBuilder struct {
}

const (
	dntHeader = "DNT"
)

func NewDNTBuilder() *DNTBuilder {
	return &DNTBuilder{}
}

// Build 把 DNT 请求头放进 request 的 ctx，
// 后面决定要不要触发评论通知邮件时会读它
func (b *DNTBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader(dntHeader) != "1" {
			return
		}
		c := ctx.Request.Context()
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithDNT(c, true))
	}
}
