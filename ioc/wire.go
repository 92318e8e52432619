//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mblog/internal/comment"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/ecodeclub/mblog/internal/settings"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitEmailService,
		InitCaptchaService,
		InitCaptchaHandler,
		InitTimeZone,
		InitSettingsModule,
		InitPostModule,
		InitCommentModule,
		wire.FieldsOf(new(*settings.Module), "Hdl"),
		wire.FieldsOf(new(*post.Module), "Hdl"),
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
