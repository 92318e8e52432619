//go:build wireinject

package post

import (
	"github.com/ecodeclub/mblog/internal/post/internal/repository"
	"github.com/ecodeclub/mblog/internal/post/internal/service"
	"github.com/ecodeclub/mblog/internal/post/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitHandler(db *egorm.Component) *Handler {
	wire.Build(
		initDAO,
		repository.NewPostRepo,
		service.NewService,
		web.NewHandler,
	)
	return new(Handler)
}
