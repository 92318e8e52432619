package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/mblog/internal/post/internal/domain"
	"github.com/ecodeclub/mblog/internal/post/internal/repository/dao"
)

// ErrDuplicateSlug 透传给上层判断
var ErrDuplicateSlug = dao.ErrDuplicateSlug

type PostRepo interface {
	Create(ctx context.Context, p domain.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
	Title(ctx context.Context, id int64) (string, error)
}

type postRepo struct {
	dao dao.PostDAO
}

func NewPostRepo(postDAO dao.PostDAO) PostRepo {
	return &postRepo{
		dao: postDAO,
	}
}

func (r *postRepo) Create(ctx context.Context, p domain.Post) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := r.dao.GetByID(ctx, id)
	return r.toDomain(p), err
}

func (r *postRepo) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	postList, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Post, 0, len(postList))
	for _, p := range postList {
		res = append(res, r.toDomain(p))
	}
	return res, nil
}

func (r *postRepo) Title(ctx context.Context, id int64) (string, error) {
	return r.dao.Title(ctx, id)
}

func (r *postRepo) toDomain(p dao.Post) domain.Post {
	return domain.Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		ContentHTML: p.ContentHTML,
		Abstract:    p.Abstract,
		Ctime:       time.UnixMilli(p.Ctime),
		Utime:       time.UnixMilli(p.Utime),
	}
}

func (r *postRepo) toEntity(p domain.Post) dao.Post {
	return dao.Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		ContentHTML: p.ContentHTML,
		Abstract:    p.Abstract,
	}
}
