package service

import (
	"context"

	"github.com/ecodeclub/mblog/internal/settings/internal/domain"
	"github.com/ecodeclub/mblog/internal/settings/internal/repository"
)

//go:generate mockgen -source=./settings.go -package=settingsmocks -destination=../../mocks/settings.mock.go -typed Service
type Service interface {
	// Content 每次都读最新快照，不做进程内缓存
	Content(ctx context.Context) (domain.ContentSettings, error)
	Notification(ctx context.Context) (domain.NotificationSettings, error)
	SaveContent(ctx context.Context, cs domain.ContentSettings) error
	SaveNotification(ctx context.Context, ns domain.NotificationSettings) error
}

type service struct {
	repo repository.SettingsRepo
}

func NewService(repo repository.SettingsRepo) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Content(ctx context.Context) (domain.ContentSettings, error) {
	return s.repo.Content(ctx)
}

func (s *service) Notification(ctx context.Context) (domain.NotificationSettings, error) {
	return s.repo.Notification(ctx)
}

func (s *service) SaveContent(ctx context.Context, cs domain.ContentSettings) error {
	return s.repo.SaveContent(ctx, cs)
}

func (s *service) SaveNotification(ctx context.Context, ns domain.NotificationSettings) error {
	return s.repo.SaveNotification(ctx, ns)
}
