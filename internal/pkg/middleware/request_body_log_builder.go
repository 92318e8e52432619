package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gotomicro/ego/core/elog"

	"github.com/gin-gonic/gin"
)

// RequestBodyLogBuilder 记录写操作的请求体，方便排查脏数据是谁提交的
type RequestBodyLogBuilder struct {
	// 超过这个长度的请求体截断后再记
	maxLen int
	logger *elog.Component
}

func NewRequestBodyLogBuilder() *RequestBodyLogBuilder {
	return &RequestBodyLogBuilder{
		maxLen: 512,
		logger: elog.DefaultLogger,
	}
}

func (b *RequestBodyLogBuilder) MaxLen(n int) *RequestBodyLogBuilder {
	b.maxLen = n
	return b
}

func (b *RequestBodyLogBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		if method != http.MethodPost && method != http.MethodPut {
			return
		}
		if ctx.Request.Body == nil {
			return
		}
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Error("读取请求体失败", elog.FieldErr(err))
			return
		}
		// 读完要放回去，不然后面的 Bind 拿不到数据
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
		logged := body
		if len(logged) > b.maxLen {
			logged = logged[:b.maxLen]
		}
		b.logger.Info("request body",
			elog.String("method", method),
			elog.String("path", ctx.Request.URL.Path),
			elog.String("body", string(logged)))
	}
}
