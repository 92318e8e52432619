package ioc

import (
	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/ecodeclub/mblog/internal/comment"
	"github.com/ecodeclub/mblog/internal/email"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/ecodeclub/mblog/internal/settings"
	"github.com/ego-component/egorm"
)

func InitSettingsModule(db *egorm.Component) *settings.Module {
	m := settings.InitModule(db)
	return &m
}

func InitPostModule(db *egorm.Component) *post.Module {
	m := post.InitModule(db)
	return &m
}

func InitCommentModule(db *egorm.Component,
	sm *settings.Module,
	pm *post.Module,
	captchaSvc captcha.Service,
	emailSvc email.Service,
	tz timezone.Resolver) *comment.Module {
	m := comment.InitModule(db, sm, pm, captchaSvc, emailSvc, tz)
	return &m
}
