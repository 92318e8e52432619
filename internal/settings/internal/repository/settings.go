package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/mblog/internal/settings/internal/domain"
	"github.com/ecodeclub/mblog/internal/settings/internal/repository/dao"
	"gorm.io/gorm"
)

const (
	nameContent      = "content"
	nameNotification = "notification"
)

type SettingsRepo interface {
	Content(ctx context.Context) (domain.ContentSettings, error)
	Notification(ctx context.Context) (domain.NotificationSettings, error)
	SaveContent(ctx context.Context, cs domain.ContentSettings) error
	SaveNotification(ctx context.Context, ns domain.NotificationSettings) error
}

type settingsRepo struct {
	dao dao.SettingDAO
}

func NewSettingsRepo(settingDAO dao.SettingDAO) SettingsRepo {
	return &settingsRepo{
		dao: settingDAO,
	}
}

func (r *settingsRepo) Content(ctx context.Context) (domain.ContentSettings, error) {
	// 没配置过就按默认值：开评论，开审核
	res := domain.ContentSettings{
		EnableComments:       true,
		RequireCommentReview: true,
	}
	err := r.load(ctx, nameContent, &res)
	return res, err
}

func (r *settingsRepo) Notification(ctx context.Context) (domain.NotificationSettings, error) {
	var res domain.NotificationSettings
	err := r.load(ctx, nameNotification, &res)
	return res, err
}

func (r *settingsRepo) SaveContent(ctx context.Context, cs domain.ContentSettings) error {
	return r.save(ctx, nameContent, cs)
}

func (r *settingsRepo) SaveNotification(ctx context.Context, ns domain.NotificationSettings) error {
	return r.save(ctx, nameNotification, ns)
}

func (r *settingsRepo) load(ctx context.Context, name string, dst any) error {
	s, err := r.dao.GetByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(s.Value), dst)
}

func (r *settingsRepo) save(ctx context.Context, name string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return r.dao.Upsert(ctx, name, string(data))
}
