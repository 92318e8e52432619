package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	captchaweb "github.com/ecodeclub/mblog/internal/captcha/web"
	"github.com/ecodeclub/mblog/internal/comment"
	"github.com/ecodeclub/mblog/internal/pkg/middleware"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	postHdl *post.Handler,
	commentHdl *comment.Handler,
	captchaHdl *captchaweb.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许站点自己的域名过来的
			return strings.Contains(origin, econf.GetString("site.domain"))
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	// 把浏览器的 DNT 信号带进请求上下文
	res.Use(middleware.NewDNTBuilder().Build())
	res.Use(middleware.NewRequestBodyLogBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	postHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	captchaHdl.PublicRoutes(res.Engine)
	return res
}
