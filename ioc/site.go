package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mblog/internal/captcha"
	captchacache "github.com/ecodeclub/mblog/internal/captcha/cache"
	captchaweb "github.com/ecodeclub/mblog/internal/captcha/web"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/gotomicro/ego/core/econf"
)

func InitCaptchaService(ec ecache.Cache) captcha.Service {
	return captchacache.NewService(ec)
}

func InitCaptchaHandler(svc captcha.Service) *captchaweb.Handler {
	return captchaweb.NewHandler(svc)
}

// InitTimeZone 站点展示时区，相对 UTC 的偏移小时数
func InitTimeZone() timezone.Resolver {
	return timezone.NewUTCOffsetResolver(econf.GetInt("site.utcOffsetHours"))
}
