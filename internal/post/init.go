package post

import (
	"github.com/ecodeclub/mblog/internal/post/internal/repository"
	"github.com/ecodeclub/mblog/internal/post/internal/repository/dao"
	"github.com/ecodeclub/mblog/internal/post/internal/service"
	"github.com/ecodeclub/mblog/internal/post/internal/web"
	"github.com/ego-component/egorm"
)

func InitModule(db *egorm.Component) Module {
	svc := service.NewService(repository.NewPostRepo(initDAO(db)))
	return Module{
		Hdl: web.NewHandler(svc),
		Svc: svc,
	}
}

func initDAO(db *egorm.Component) dao.PostDAO {
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return dao.NewPostDAO(db)
}
