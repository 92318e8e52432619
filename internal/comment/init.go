package comment

import (
	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/ecodeclub/mblog/internal/comment/internal/event"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/mblog/internal/comment/internal/service"
	"github.com/ecodeclub/mblog/internal/comment/internal/web"
	"github.com/ecodeclub/mblog/internal/email"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/ecodeclub/mblog/internal/settings"
	"github.com/ego-component/egorm"
)

func InitModule(db *egorm.Component,
	sm *settings.Module,
	pm *post.Module,
	captchaSvc captcha.Service,
	emailSvc email.Service,
	tz timezone.Resolver) Module {
	svc := service.NewCommentService(
		service.NewAntiSpamGate(captchaSvc),
		sm.Svc,
		pm.Svc,
		repository.NewCommentRepository(initDAO(db)),
		event.NewEmailDispatcher(emailSvc),
	)
	return Module{
		Hdl: web.NewHandler(svc, sm.Svc, tz),
		Svc: svc,
	}
}

func initDAO(db *egorm.Component) dao.CommentDAO {
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return dao.NewCommentGORMDAO(db)
}
