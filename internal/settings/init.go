package settings

import (
	"github.com/ecodeclub/mblog/internal/settings/internal/repository"
	"github.com/ecodeclub/mblog/internal/settings/internal/repository/dao"
	"github.com/ecodeclub/mblog/internal/settings/internal/service"
	"github.com/ecodeclub/mblog/internal/settings/internal/web"
	"github.com/ego-component/egorm"
)

func InitModule(db *egorm.Component) Module {
	svc := service.NewService(repository.NewSettingsRepo(initDAO(db)))
	return Module{
		Hdl: web.NewHandler(svc),
		Svc: svc,
	}
}

func initDAO(db *egorm.Component) dao.SettingDAO {
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return dao.NewSettingDAO(db)
}
