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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Comment 访客对文章的评论
type Comment struct {
	ID int64 `gorm:"autoIncrement,primaryKey;comment:'评论自增ID'"`

	PostID int64 `gorm:"type:bigint;not null;index:idx_post_id;comment:'评论的文章ID'"`

	// 0 表示对文章的直接评论
	ParentID int64 `gorm:"type:bigint;not null;default:0;index:idx_parent_id;comment:'父评论ID'"`

	Username string `gorm:"type:varchar(128);not null;comment:'访客署名'"`
	Email    string `gorm:"type:varchar(256);not null;comment:'访客邮箱'"`

	Content string `gorm:"type:text;not null;comment:'评论的具体内容，HTML'"`

	IP        string `gorm:"type:varchar(64);comment:'提交时的IP'"`
	UserAgent string `gorm:"type:varchar(512);comment:'提交时的UA'"`

	IsApproved bool `gorm:"not null;default:false;index:idx_is_approved;comment:'是否已过审'"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 落库一条评论，返回自增ID
	Create(ctx context.Context, c Comment) (int64, error)
	// ToggleApproval 审核状态取反，返回受影响的行数
	ToggleApproval(ctx context.Context, id int64) (int64, error)
	// Delete 按ID批量删除评论，连带删掉它们的回复
	Delete(ctx context.Context, ids []int64) error
	// FindApprovedByPostID 某篇文章下所有已过审的评论，按评论时间正序
	FindApprovedByPostID(ctx context.Context, postID int64) ([]Comment, error)
	// List 后台分页，不分审核状态，新的在前
	List(ctx context.Context, offset, limit int) ([]Comment, error)
	// Count 评论总数
	Count(ctx context.Context) (int64, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (g *commentDAO) ToggleApproval(ctx context.Context, id int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_approved": gorm.Expr("NOT is_approved"),
			"utime":       time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *commentDAO) Delete(ctx context.Context, ids []int64) error {
	return g.db.WithContext(ctx).
		Where("id IN ? OR parent_id IN ?", ids, ids).
		Delete(&Comment{}).Error
}

func (g *commentDAO) FindApprovedByPostID(ctx context.Context, postID int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("post_id = ? AND is_approved = ?", postID, true).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) List(ctx context.Context, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).Count(&count).Error
	return count, err
}
