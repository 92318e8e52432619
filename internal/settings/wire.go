//go:build wireinject

package settings

import (
	"github.com/ecodeclub/mblog/internal/settings/internal/repository"
	"github.com/ecodeclub/mblog/internal/settings/internal/service"
	"github.com/ecodeclub/mblog/internal/settings/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitHandler(db *egorm.Component) *Handler {
	wire.Build(
		initDAO,
		repository.NewSettingsRepo,
		service.NewService,
		web.NewHandler,
	)
	return new(Handler)
}
