package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type SettingDAO interface {
	GetByName(ctx context.Context, name string) (Setting, error)
	// Upsert 按名字整体覆盖
	Upsert(ctx context.Context, name string, value string) error
}

type settingDAO struct {
	db *egorm.Component
}

func NewSettingDAO(db *egorm.Component) SettingDAO {
	return &settingDAO{
		db: db,
	}
}

func (d *settingDAO) GetByName(ctx context.Context, name string) (Setting, error) {
	var s Setting
	err := d.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	return s, err
}

func (d *settingDAO) Upsert(ctx context.Context, name string, value string) error {
	now := time.Now().UnixMilli()
	s := Setting{
		Name:  name,
		Value: value,
		Ctime: now,
		Utime: now,
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value": value,
			"utime": now,
		}),
	}).Create(&s).Error
}

type Setting struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"column:name;type:varchar(64);comment:配置名;not null;uniqueIndex:uniq_name"`
	Value string `gorm:"column:value;type:text;comment:JSON 配置内容"`
	Ctime int64
	Utime int64
}

func (Setting) TableName() string {
	return "settings"
}
