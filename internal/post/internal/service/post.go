package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mblog/internal/pkg/htmlx"
	"github.com/ecodeclub/mblog/internal/pkg/markdownx"
	"github.com/ecodeclub/mblog/internal/post/internal/domain"
	"github.com/ecodeclub/mblog/internal/post/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrPostNotFound 查无此文
	ErrPostNotFound = errors.New("文章不存在")
	// ErrDuplicateSlug 链接别名已被占用
	ErrDuplicateSlug = repository.ErrDuplicateSlug
)

// 列表页摘要的长度
const abstractWordCount = 400

//go:generate mockgen -source=./post.go -package=postmocks -destination=../../mocks/post.mock.go -typed Service
type Service interface {
	// Create 渲染 Markdown、生成摘要之后落库
	Create(ctx context.Context, p domain.Post) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
	// Title 文章不存在返回 ErrPostNotFound
	Title(ctx context.Context, id int64) (string, error)
}

type service struct {
	repo repository.PostRepo
}

func NewService(repo repository.PostRepo) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, p domain.Post) (int64, error) {
	html, err := markdownx.ToHTML(p.Content)
	if err != nil {
		return 0, err
	}
	// img 换成懒加载
	p.ContentHTML = htmlx.ReplaceImgSrc(html)
	p.Abstract = htmlx.Abstract(html, abstractWordCount)
	return s.repo.Create(ctx, p)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, ErrPostNotFound
	}
	return p, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Title(ctx context.Context, id int64) (string, error) {
	title, err := s.repo.Title(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrPostNotFound
	}
	return title, err
}
