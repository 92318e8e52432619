// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mblog/internal/comment/internal/domain"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository/dao"
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go -typed CommentRepository
type CommentRepository interface {
	// Create 落库一条评论，返回自增ID
	Create(ctx context.Context, comment domain.Comment) (int64, error)
	// ToggleApproval 审核状态取反，返回是否真有这条评论
	ToggleApproval(ctx context.Context, id int64) (bool, error)
	// Delete 按ID批量删除评论及其回复
	Delete(ctx context.Context, ids []int64) error
	// ListApproved 某篇文章下所有已过审的评论
	ListApproved(ctx context.Context, postID int64) ([]domain.Comment, error)
	// List 后台分页
	List(ctx context.Context, offset, limit int) ([]domain.Comment, error)
	// Total 评论总数
	Total(ctx context.Context) (int64, error)
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(dao dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: dao}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(comment))
}

func (r *commentRepository) ToggleApproval(ctx context.Context, id int64) (bool, error) {
	affected, err := r.dao.ToggleApproval(ctx, id)
	return affected > 0, err
}

func (r *commentRepository) Delete(ctx context.Context, ids []int64) error {
	return r.dao.Delete(ctx, ids)
}

func (r *commentRepository) ListApproved(ctx context.Context, postID int64) ([]domain.Comment, error) {
	comments, err := r.dao.FindApprovedByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return slice.Map(comments, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) List(ctx context.Context, offset, limit int) ([]domain.Comment, error) {
	comments, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(comments, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	return dao.Comment{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Username:   comment.Username,
		Email:      comment.Email,
		Content:    comment.Content,
		IP:         comment.IP,
		UserAgent:  comment.UserAgent,
		IsApproved: comment.IsApproved,
	}
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Username:   comment.Username,
		Email:      comment.Email,
		Content:    comment.Content,
		IP:         comment.IP,
		UserAgent:  comment.UserAgent,
		IsApproved: comment.IsApproved,
		CreateTime: comment.Ctime,
	}
}
