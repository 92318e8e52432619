package ectx

import "context"

type dntContextType string

var (
	dntCtxKey dntContextType = "dnt"
)

// CtxWithDNT 在 ctx 上记录浏览器的 Do-Not-Track 信号
func CtxWithDNT(ctx context.Context, dnt bool) context.Context {
	return context.WithValue(ctx, dntCtxKey, dnt)
}

// DNTFromCtx 没有设置过就当没开
func DNTFromCtx(ctx context.Context) bool {
	val := ctx.Value(dntCtxKey)
	if val == nil {
		return false
	}
	v, ok := val.(bool)
	return ok && v
}
