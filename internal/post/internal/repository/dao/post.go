package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateSlug 链接别名撞了
var ErrDuplicateSlug = errors.New("链接别名已经存在")

type PostDAO interface {
	Create(ctx context.Context, p Post) (int64, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, error)
	// Title 只查标题，评论通知邮件用
	Title(ctx context.Context, id int64) (string, error)
}

type postDAO struct {
	db *egorm.Component
}

func NewPostDAO(db *egorm.Component) PostDAO {
	return &postDAO{
		db: db,
	}
}

func (d *postDAO) Create(ctx context.Context, p Post) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateSlug
		}
	}
	return p.ID, err
}

func (d *postDAO) GetByID(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *postDAO) List(ctx context.Context, offset, limit int) ([]Post, error) {
	var res []Post
	err := d.db.WithContext(ctx).
		Select("id", "title", "slug", "abstract", "ctime", "utime").
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *postDAO) Title(ctx context.Context, id int64) (string, error) {
	var p Post
	err := d.db.WithContext(ctx).
		Select("title").
		Where("id = ?", id).First(&p).Error
	return p.Title, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Post{})
}

type Post struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Title string `gorm:"column:title;type:varchar(255);comment:标题;not null"`
	Slug  string `gorm:"column:slug;type:varchar(255);comment:链接别名;not null;uniqueIndex:uniq_slug"`
	// Markdown 原文
	Content string `gorm:"column:content;type:text;comment:Markdown 原文"`
	// 渲染好的 HTML
	ContentHTML string `gorm:"column:content_html;type:text;comment:渲染后的正文"`
	Abstract    string `gorm:"column:abstract;type:varchar(1024);comment:摘要"`
	Ctime       int64
	Utime       int64
}

func (Post) TableName() string {
	return "posts"
}
