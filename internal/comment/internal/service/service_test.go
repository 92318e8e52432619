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
	"testing"

	"github.com/ecodeclub/mblog/internal/captcha"
	captchamocks "github.com/ecodeclub/mblog/internal/captcha/mocks"
	"github.com/ecodeclub/mblog/internal/comment/internal/domain"
	"github.com/ecodeclub/mblog/internal/comment/internal/event"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository"
	repomocks "github.com/ecodeclub/mblog/internal/comment/internal/repository/mocks"
	"github.com/ecodeclub/mblog/internal/pkg/ectx"
	"github.com/ecodeclub/mblog/internal/post"
	postmocks "github.com/ecodeclub/mblog/internal/post/mocks"
	"github.com/ecodeclub/mblog/internal/settings"
	settingsmocks "github.com/ecodeclub/mblog/internal/settings/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingDispatcher 同步收集通知，断言调度逻辑用
type recordingDispatcher struct {
	notifications []event.CommentNotification
}

func (d *recordingDispatcher) Dispatch(n event.CommentNotification) {
	d.notifications = append(d.notifications, n)
}

func okCaptcha(ctrl *gomock.Controller) captcha.Service {
	svc := captchamocks.NewMockService(ctrl)
	svc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	return svc
}

func submission() domain.CommentSubmission {
	return domain.CommentSubmission{
		PostID:      1,
		Username:    "tom",
		Email:       "tom@example.com",
		Content:     "**好文**",
		CaptchaID:   "cid",
		CaptchaCode: "123456",
		IP:          "1.2.3.4",
		UserAgent:   "UnitTest/1.0",
	}
}

func TestCommentService_Submit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		ctx  func() context.Context
		mock func(ctrl *gomock.Controller) (repository.CommentRepository,
			settings.Service, post.Service, captcha.Service)
		sub domain.CommentSubmission

		wantErr      error
		wantComment  domain.Comment
		wantNotified int
	}{
		{
			name: "邮箱非法_什么都不做",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				// 任何一个被调用都算失败
				return repomocks.NewMockCommentRepository(ctrl),
					settingsmocks.NewMockService(ctrl),
					postmocks.NewMockService(ctrl),
					captchamocks.NewMockService(ctrl)
			},
			sub: func() domain.CommentSubmission {
				sub := submission()
				sub.Email = "not-an-email"
				return sub
			}(),
			wantErr: ErrInvalidEmail,
		},
		{
			name: "验证码不对",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				captchaSvc := captchamocks.NewMockService(ctrl)
				captchaSvc.EXPECT().Verify(gomock.Any(), "cid", "123456").Return(false)
				return repomocks.NewMockCommentRepository(ctrl),
					settingsmocks.NewMockService(ctrl),
					postmocks.NewMockService(ctrl),
					captchaSvc
			},
			sub:     submission(),
			wantErr: ErrInvalidCaptcha,
		},
		{
			name: "评论功能关着",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: false}, nil)
				return repomocks.NewMockCommentRepository(ctrl),
					settingsSvc,
					postmocks.NewMockService(ctrl),
					okCaptcha(ctrl)
			},
			sub:     submission(),
			wantErr: ErrCommentsClosed,
		},
		{
			name: "文章不存在_不落库",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).
					Return("", post.ErrPostNotFound)
				return repomocks.NewMockCommentRepository(ctrl),
					settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub:     submission(),
			wantErr: ErrCommentNotCreated,
		},
		{
			name: "落库没拿到ID",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub:     submission(),
			wantErr: ErrCommentNotCreated,
		},
		{
			name: "开了审核_待审落库并通知",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{
						EnableComments:       true,
						RequireCommentReview: true,
					}, nil)
				settingsSvc.EXPECT().Notification(gomock.Any()).
					Return(settings.NotificationSettings{
						SendEmailOnNewComment: true,
						AdminEmail:            "admin@example.com",
					}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Comment{
					PostID:     1,
					Username:   "tom",
					Email:      "tom@example.com",
					Content:    "<p><strong>好文</strong></p>\n",
					IP:         "1.2.3.4",
					UserAgent:  "UnitTest/1.0",
					IsApproved: false,
				}).Return(int64(7), nil)
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub: submission(),
			wantComment: domain.Comment{
				ID:         7,
				PostID:     1,
				Username:   "tom",
				Email:      "tom@example.com",
				Content:    "<p><strong>好文</strong></p>\n",
				IP:         "1.2.3.4",
				UserAgent:  "UnitTest/1.0",
				IsApproved: false,
			},
			wantNotified: 1,
		},
		{
			name: "没开审核_直接过审",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				settingsSvc.EXPECT().Notification(gomock.Any()).
					Return(settings.NotificationSettings{
						SendEmailOnNewComment: true,
						AdminEmail:            "admin@example.com",
					}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c domain.Comment) (int64, error) {
						assert.True(t, c.IsApproved)
						return int64(8), nil
					})
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub: submission(),
			wantComment: domain.Comment{
				ID:         8,
				PostID:     1,
				Username:   "tom",
				Email:      "tom@example.com",
				Content:    "<p><strong>好文</strong></p>\n",
				IP:         "1.2.3.4",
				UserAgent:  "UnitTest/1.0",
				IsApproved: true,
			},
			wantNotified: 1,
		},
		{
			name: "访客带DNT_不发通知",
			ctx: func() context.Context {
				return ectx.CtxWithDNT(context.Background(), true)
			},
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				// 连通知配置都不应该去读
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(9), nil)
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub: submission(),
			wantComment: domain.Comment{
				ID:         9,
				PostID:     1,
				Username:   "tom",
				Email:      "tom@example.com",
				Content:    "<p><strong>好文</strong></p>\n",
				IP:         "1.2.3.4",
				UserAgent:  "UnitTest/1.0",
				IsApproved: true,
			},
			wantNotified: 0,
		},
		{
			name: "没配置收件邮箱_不发通知",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				settingsSvc.EXPECT().Notification(gomock.Any()).
					Return(settings.NotificationSettings{
						SendEmailOnNewComment: true,
					}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(10), nil)
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub: submission(),
			wantComment: domain.Comment{
				ID:         10,
				PostID:     1,
				Username:   "tom",
				Email:      "tom@example.com",
				Content:    "<p><strong>好文</strong></p>\n",
				IP:         "1.2.3.4",
				UserAgent:  "UnitTest/1.0",
				IsApproved: true,
			},
			wantNotified: 0,
		},
		{
			name: "关了邮件通知_不发",
			ctx:  context.Background,
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository,
				settings.Service, post.Service, captcha.Service) {
				settingsSvc := settingsmocks.NewMockService(ctrl)
				settingsSvc.EXPECT().Content(gomock.Any()).
					Return(settings.ContentSettings{EnableComments: true}, nil)
				settingsSvc.EXPECT().Notification(gomock.Any()).
					Return(settings.NotificationSettings{
						SendEmailOnNewComment: false,
						AdminEmail:            "admin@example.com",
					}, nil)
				postSvc := postmocks.NewMockService(ctrl)
				postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("标题", nil)
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				return repo, settingsSvc, postSvc, okCaptcha(ctrl)
			},
			sub: submission(),
			wantComment: domain.Comment{
				ID:         11,
				PostID:     1,
				Username:   "tom",
				Email:      "tom@example.com",
				Content:    "<p><strong>好文</strong></p>\n",
				IP:         "1.2.3.4",
				UserAgent:  "UnitTest/1.0",
				IsApproved: true,
			},
			wantNotified: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, settingsSvc, postSvc, captchaSvc := tc.mock(ctrl)
			dispatcher := &recordingDispatcher{}
			svc := NewCommentService(NewAntiSpamGate(captchaSvc),
				settingsSvc, postSvc, repo, dispatcher)

			c, err := svc.Submit(tc.ctx(), tc.sub)

			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantComment, c)
			}
			assert.Len(t, dispatcher.notifications, tc.wantNotified)
			if tc.wantNotified > 0 {
				n := dispatcher.notifications[0]
				assert.Equal(t, "admin@example.com", n.To)
				assert.Equal(t, "标题", n.PostTitle)
				assert.Equal(t, "tom", n.Username)
			}
		})
	}
}

func TestCommentService_ToggleApproval(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CommentRepository
		id      int64
		wantID  int64
		wantErr error
	}{
		{
			name: "成功_原样返回ID",
			mock: func(ctrl *gomock.Controller) repository.CommentRepository {
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().ToggleApproval(gomock.Any(), int64(5)).Return(true, nil)
				return repo
			},
			id:     5,
			wantID: 5,
		},
		{
			name: "评论不存在",
			mock: func(ctrl *gomock.Controller) repository.CommentRepository {
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().ToggleApproval(gomock.Any(), int64(6)).Return(false, nil)
				return repo
			},
			id:      6,
			wantErr: ErrCommentNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.CommentRepository {
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().ToggleApproval(gomock.Any(), int64(7)).
					Return(false, errors.New("mock db error"))
				return repo
			},
			id:      7,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCommentService(nil, nil, nil, tc.mock(ctrl), nil)
			id, err := svc.ToggleApproval(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestCommentService_Delete(t *testing.T) {
	t.Parallel()
	t.Run("空ID列表直接报错", func(t *testing.T) {
		svc := NewCommentService(nil, nil, nil, nil, nil)
		err := svc.Delete(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoCommentIDs)
		err = svc.Delete(context.Background(), []int64{})
		assert.ErrorIs(t, err, ErrNoCommentIDs)
	})
	t.Run("透传给repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockCommentRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), []int64{1, 2, 3}).Return(nil)
		svc := NewCommentService(nil, nil, nil, repo, nil)
		assert.NoError(t, svc.Delete(context.Background(), []int64{1, 2, 3}))
	})
}

func TestCommentService_Reply(t *testing.T) {
	t.Parallel()
	t.Run("评论关闭时不能回复", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsSvc := settingsmocks.NewMockService(ctrl)
		settingsSvc.EXPECT().Content(gomock.Any()).
			Return(settings.ContentSettings{EnableComments: false}, nil)
		svc := NewCommentService(nil, settingsSvc, nil, nil, nil)
		_, err := svc.Reply(context.Background(), 1, 2, "回复内容")
		assert.ErrorIs(t, err, ErrCommentsClosed)
	})
	t.Run("站长回复不用过审", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsSvc := settingsmocks.NewMockService(ctrl)
		// 即便开了审核
		settingsSvc.EXPECT().Content(gomock.Any()).
			Return(settings.ContentSettings{
				EnableComments:       true,
				RequireCommentReview: true,
			}, nil)
		postSvc := postmocks.NewMockService(ctrl)
		postSvc.EXPECT().Title(gomock.Any(), int64(1)).Return("测试文章", nil)
		repo := repomocks.NewMockCommentRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), domain.Comment{
			PostID:     1,
			ParentID:   2,
			Username:   "博主",
			Content:    "<p>回复内容</p>\n",
			IsApproved: true,
		}).Return(int64(12), nil)
		svc := NewCommentService(nil, settingsSvc, postSvc, repo, nil)
		id, err := svc.Reply(context.Background(), 1, 2, "回复内容")
		assert.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})
	t.Run("文章不存在_不会回出孤儿评论", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsSvc := settingsmocks.NewMockService(ctrl)
		settingsSvc.EXPECT().Content(gomock.Any()).
			Return(settings.ContentSettings{EnableComments: true}, nil)
		postSvc := postmocks.NewMockService(ctrl)
		postSvc.EXPECT().Title(gomock.Any(), int64(404)).
			Return("", post.ErrPostNotFound)
		// repo 不能被调用到
		repo := repomocks.NewMockCommentRepository(ctrl)
		svc := NewCommentService(nil, settingsSvc, postSvc, repo, nil)
		_, err := svc.Reply(context.Background(), 404, 2, "回复内容")
		assert.ErrorIs(t, err, ErrCommentNotCreated)
	})
}

func TestCommentService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCommentRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), 0, 10).
		Return([]domain.Comment{{ID: 2}, {ID: 1}}, nil)
	repo.EXPECT().Total(gomock.Any()).Return(int64(2), nil)
	svc := NewCommentService(nil, nil, nil, repo, nil)
	comments, total, err := svc.List(context.Background(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []domain.Comment{{ID: 2}, {ID: 1}}, comments)
}
