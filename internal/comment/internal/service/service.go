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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mblog/internal/comment/internal/domain"
	"github.com/ecodeclub/mblog/internal/comment/internal/event"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository"
	"github.com/ecodeclub/mblog/internal/pkg/ectx"
	"github.com/ecodeclub/mblog/internal/pkg/markdownx"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/ecodeclub/mblog/internal/settings"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidEmail      = errors.New("邮箱格式非法")
	ErrInvalidCaptcha    = errors.New("验证码不对")
	ErrCommentsClosed    = errors.New("评论功能已关闭")
	ErrCommentNotCreated = errors.New("评论创建失败")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrNoCommentIDs      = errors.New("没有指定评论ID")
)

// 站长回复时的署名
const adminUsername = "博主"

type CommentService interface {
	// Submit 访客提交评论，走反垃圾和审核策略，
	// 返回的评论里带着最终的审核状态
	Submit(ctx context.Context, sub domain.CommentSubmission) (domain.Comment, error)
	// Reply 站长回复某条评论，不走反垃圾
	Reply(ctx context.Context, postID, parentID int64, content string) (int64, error)
	// ToggleApproval 审核状态取反，成功时原样返回ID
	ToggleApproval(ctx context.Context, id int64) (int64, error)
	// Delete 批量删除评论及其回复，ids 不能为空
	Delete(ctx context.Context, ids []int64) error
	// ListApproved 某篇文章下所有已过审的评论
	ListApproved(ctx context.Context, postID int64) ([]domain.Comment, error)
	// List 后台分页，返回评论和总数
	List(ctx context.Context, offset, limit int) ([]domain.Comment, int64, error)
}

type commentService struct {
	gate        *AntiSpamGate
	settingsSvc settings.Service
	postSvc     post.Service
	repo        repository.CommentRepository
	dispatcher  event.Dispatcher
}

func NewCommentService(
	gate *AntiSpamGate,
	settingsSvc settings.Service,
	postSvc post.Service,
	repo repository.CommentRepository,
	dispatcher event.Dispatcher) CommentService {
	return &commentService{
		gate:        gate,
		settingsSvc: settingsSvc,
		postSvc:     postSvc,
		repo:        repo,
		dispatcher:  dispatcher,
	}
}

func (s *commentService) Submit(ctx context.Context, sub domain.CommentSubmission) (domain.Comment, error) {
	// 反垃圾拦截要在所有落库动作之前
	if err := s.gate.Check(ctx, sub); err != nil {
		return domain.Comment{}, err
	}

	cs, err := s.settingsSvc.Content(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	decision := Decide(cs)
	if decision == DecisionRejected {
		return domain.Comment{}, ErrCommentsClosed
	}

	// 文章不存在就不创建评论
	title, err := s.postSvc.Title(ctx, sub.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return domain.Comment{}, ErrCommentNotCreated
		}
		return domain.Comment{}, err
	}

	html, err := markdownx.ToHTML(sub.Content)
	if err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		PostID:     sub.PostID,
		Username:   sub.Username,
		Email:      sub.Email,
		Content:    html,
		IP:         sub.IP,
		UserAgent:  sub.UserAgent,
		IsApproved: decision == DecisionAutoApproved,
	}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Comment{}, err
	}
	if id == 0 {
		return domain.Comment{}, ErrCommentNotCreated
	}
	c.ID = id

	s.notify(ctx, title, c)
	return c, nil
}

// notify 调度新评论通知，访客带了 DNT 信号就不发
func (s *commentService) notify(ctx context.Context, postTitle string, c domain.Comment) {
	if ectx.DNTFromCtx(ctx) {
		return
	}
	ns, err := s.settingsSvc.Notification(ctx)
	if err != nil || !ns.SendEmailOnNewComment || ns.AdminEmail == "" {
		return
	}
	s.dispatcher.Dispatch(event.CommentNotification{
		To:        ns.AdminEmail,
		PostTitle: postTitle,
		Username:  c.Username,
		Email:     c.Email,
		Content:   c.Content,
	})
}

func (s *commentService) Reply(ctx context.Context, postID, parentID int64, content string) (int64, error) {
	cs, err := s.settingsSvc.Content(ctx)
	if err != nil {
		return 0, err
	}
	if !cs.EnableComments {
		return 0, ErrCommentsClosed
	}
	// 回复也要先确认文章在，免得手滑回出孤儿评论
	if _, err = s.postSvc.Title(ctx, postID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return 0, ErrCommentNotCreated
		}
		return 0, err
	}
	html, err := markdownx.ToHTML(content)
	if err != nil {
		return 0, err
	}
	// 站长自己的回复不用过审
	return s.repo.Create(ctx, domain.Comment{
		PostID:     postID,
		ParentID:   parentID,
		Username:   adminUsername,
		Content:    html,
		IsApproved: true,
	})
}

func (s *commentService) ToggleApproval(ctx context.Context, id int64) (int64, error) {
	ok, err := s.repo.ToggleApproval(ctx, id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCommentNotFound
	}
	return id, nil
}

func (s *commentService) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrNoCommentIDs
	}
	return s.repo.Delete(ctx, ids)
}

func (s *commentService) ListApproved(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.repo.ListApproved(ctx, postID)
}

func (s *commentService) List(ctx context.Context, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)
	eg.Go(func() error {
		var err error
		comments, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return comments, total, eg.Wait()
}
