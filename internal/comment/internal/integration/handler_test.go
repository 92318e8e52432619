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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	captchamocks "github.com/ecodeclub/mblog/internal/captcha/mocks"
	"github.com/ecodeclub/mblog/internal/comment/internal/event"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/mblog/internal/comment/internal/service"
	"github.com/ecodeclub/mblog/internal/comment/internal/web"
	"github.com/ecodeclub/mblog/internal/email"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/ecodeclub/mblog/internal/post"
	postmocks "github.com/ecodeclub/mblog/internal/post/mocks"
	"github.com/ecodeclub/mblog/internal/settings"
	settingsmocks "github.com/ecodeclub/mblog/internal/settings/mocks"
	"github.com/ecodeclub/mblog/internal/test"
	testioc "github.com/ecodeclub/mblog/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testPostID  = int64(100)
	goodCaptcha = "123456"
)

type fakeEmailService struct {
	ch chan email.Mail
}

func (f *fakeEmailService) SendMail(_ context.Context, mail email.Mail) error {
	select {
	case f.ch <- mail:
	default:
	}
	return nil
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.CommentDAO

	// 每个用例跑之前改这两个就能调整站点配置
	contentSettings      settings.ContentSettings
	notificationSettings settings.NotificationSettings

	mails chan email.Mail
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	s.NoError(err)
	s.dao = dao.NewCommentGORMDAO(s.db)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})

	ctrl := gomock.NewController(s.T())

	settingsSvc := settingsmocks.NewMockService(ctrl)
	settingsSvc.EXPECT().Content(gomock.Any()).
		DoAndReturn(func(_ context.Context) (settings.ContentSettings, error) {
			return s.contentSettings, nil
		}).AnyTimes()
	settingsSvc.EXPECT().Notification(gomock.Any()).
		DoAndReturn(func(_ context.Context) (settings.NotificationSettings, error) {
			return s.notificationSettings, nil
		}).AnyTimes()

	postSvc := postmocks.NewMockService(ctrl)
	postSvc.EXPECT().Title(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (string, error) {
			if id == testPostID {
				return "测试文章", nil
			}
			return "", post.ErrPostNotFound
		}).AnyTimes()

	captchaSvc := captchamocks.NewMockService(ctrl)
	captchaSvc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, code string) bool {
			return code == goodCaptcha
		}).AnyTimes()

	s.mails = make(chan email.Mail, 10)
	svc := service.NewCommentService(
		service.NewAntiSpamGate(captchaSvc),
		settingsSvc,
		postSvc,
		repository.NewCommentRepository(s.dao),
		event.NewEmailDispatcher(&fakeEmailService{ch: s.mails}),
	)
	hdl := web.NewHandler(svc, settingsSvc, timezone.NewUTCOffsetResolver(8))

	server := egin.Load("server").Build()
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	s.contentSettings = settings.ContentSettings{EnableComments: true}
	s.notificationSettings = settings.NotificationSettings{}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `comments`").Error)
}

func (s *HandlerTestSuite) createReq() web.CreateCommentReq {
	return web.CreateCommentReq{
		PostID:      testPostID,
		Username:    "tom",
		Email:       "tom@example.com",
		Content:     "**好文**",
		CaptchaID:   "cid",
		CaptchaCode: goodCaptcha,
	}
}

func (s *HandlerTestSuite) post(path string, req any) *test.JSONResponseRecorder[web.Comment] {
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(req))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Comment]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) TestCreateComment() {
	testCases := []struct {
		name   string
		before func()
		req    func() web.CreateCommentReq

		wantHTTPCode int
		wantCode     int
		// 期望回显的评论内容，空表示不回显
		wantContent string
		wantRows    int64
	}{
		{
			name:         "没开审核_直接过审并回显",
			before:       func() {},
			req:          s.createReq,
			wantHTTPCode: 200,
			wantContent:  "<p><strong>好文</strong></p>\n",
			wantRows:     1,
		},
		{
			name: "开了审核_落库但不回显",
			before: func() {
				s.contentSettings.RequireCommentReview = true
			},
			req:          s.createReq,
			wantHTTPCode: 200,
			wantRows:     1,
		},
		{
			name: "开了审核和回显_待审内容也回给提交者",
			before: func() {
				s.contentSettings.RequireCommentReview = true
				s.contentSettings.EchoPendingComment = true
			},
			req:          s.createReq,
			wantHTTPCode: 200,
			wantContent:  "<p><strong>好文</strong></p>\n",
			wantRows:     1,
		},
		{
			name:   "邮箱非法",
			before: func() {},
			req: func() web.CreateCommentReq {
				req := s.createReq()
				req.Email = "not-an-email"
				return req
			},
			wantHTTPCode: 200,
			wantCode:     512002,
		},
		{
			name:   "验证码不对",
			before: func() {},
			req: func() web.CreateCommentReq {
				req := s.createReq()
				req.CaptchaCode = "000000"
				return req
			},
			wantHTTPCode: 200,
			wantCode:     512002,
		},
		{
			name: "评论功能关着",
			before: func() {
				s.contentSettings.EnableComments = false
			},
			req:          s.createReq,
			wantHTTPCode: 200,
			wantCode:     512003,
		},
		{
			name:   "文章不存在",
			before: func() {},
			req: func() web.CreateCommentReq {
				req := s.createReq()
				req.PostID = 999999
				return req
			},
			wantHTTPCode: 200,
			wantCode:     512004,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.before()
			recorder := s.post("/comment/create", tc.req())
			s.Equal(tc.wantHTTPCode, recorder.Code)
			res := recorder.MustScan()
			s.Equal(tc.wantCode, res.Code)
			s.Equal(tc.wantContent, res.Data.Content)

			var count int64
			s.NoError(s.db.Model(&dao.Comment{}).Count(&count).Error)
			s.Equal(tc.wantRows, count)

			s.TearDownTest()
			s.SetupTest()
		})
	}
}

func (s *HandlerTestSuite) TestCreateComment_通知站长() {
	s.notificationSettings = settings.NotificationSettings{
		SendEmailOnNewComment: true,
		AdminEmail:            "admin@example.com",
	}
	recorder := s.post("/comment/create", s.createReq())
	s.Equal(200, recorder.Code)

	select {
	case mail := <-s.mails:
		s.Equal("admin@example.com", mail.To)
		s.Contains(mail.Subject, "测试文章")
	case <-time.After(time.Second):
		s.Fail("没收到评论通知")
	}
}

func (s *HandlerTestSuite) TestListComments_只展示过审的() {
	now := time.Now().UnixMilli()
	for _, c := range []dao.Comment{
		{PostID: testPostID, Username: "a", Email: "a@b.c", Content: "<p>一</p>", IsApproved: true, Ctime: now, Utime: now},
		{PostID: testPostID, Username: "b", Email: "b@b.c", Content: "<p>二</p>", IsApproved: false, Ctime: now, Utime: now},
		{PostID: testPostID + 1, Username: "c", Email: "c@b.c", Content: "<p>三</p>", IsApproved: true, Ctime: now, Utime: now},
	} {
		s.NoError(s.db.Create(&c).Error)
	}

	httpReq, err := http.NewRequest(http.MethodPost, "/comment/list",
		iox.NewJSONReader(web.ListCommentsReq{PostID: testPostID}))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.Comment]()
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)

	list := recorder.MustScan().Data
	s.Len(list, 1)
	s.Equal("<p>一</p>", list[0].Content)
	s.True(list[0].IsApproved)
	s.NotEmpty(list[0].CreateTime)
}

func (s *HandlerTestSuite) TestToggleApproval() {
	now := time.Now().UnixMilli()
	c := dao.Comment{PostID: testPostID, Username: "a", Email: "a@b.c",
		Content: "<p>待审</p>", IsApproved: false, Ctime: now, Utime: now}
	s.NoError(s.db.Create(&c).Error)

	recorder := test.NewJSONResponseRecorder[int64]()
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/approval/toggle",
		iox.NewJSONReader(web.ToggleApprovalReq{ID: c.ID}))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)
	s.Equal(c.ID, recorder.MustScan().Data)

	var after dao.Comment
	s.NoError(s.db.First(&after, c.ID).Error)
	s.True(after.IsApproved)

	// 不存在的评论
	recorder2 := test.NewJSONResponseRecorder[int64]()
	httpReq2, err := http.NewRequest(http.MethodPost, "/comment/approval/toggle",
		iox.NewJSONReader(web.ToggleApprovalReq{ID: 999999}))
	s.NoError(err)
	httpReq2.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder2, httpReq2)
	s.Equal(512005, recorder2.MustScan().Code)
}

func (s *HandlerTestSuite) TestDeleteComments() {
	now := time.Now().UnixMilli()
	parent := dao.Comment{PostID: testPostID, Username: "a", Email: "a@b.c",
		Content: "<p>父</p>", IsApproved: true, Ctime: now, Utime: now}
	s.NoError(s.db.Create(&parent).Error)
	reply := dao.Comment{PostID: testPostID, ParentID: parent.ID, Username: "博主",
		Content: "<p>回复</p>", IsApproved: true, Ctime: now, Utime: now}
	s.NoError(s.db.Create(&reply).Error)

	recorder := test.NewJSONResponseRecorder[[]int64]()
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/delete",
		iox.NewJSONReader(web.DeleteCommentsReq{IDs: []int64{parent.ID}}))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)
	// 原样回显删掉的ID集合
	s.Equal([]int64{parent.ID}, recorder.MustScan().Data)

	// 回复也被连带删掉
	var count int64
	s.NoError(s.db.Model(&dao.Comment{}).Count(&count).Error)
	s.Equal(int64(0), count)

	// 空ID列表
	recorder2 := test.NewJSONResponseRecorder[any]()
	httpReq2, err := http.NewRequest(http.MethodPost, "/comment/delete",
		iox.NewJSONReader(web.DeleteCommentsReq{}))
	s.NoError(err)
	httpReq2.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder2, httpReq2)
	s.Equal(512002, recorder2.MustScan().Code)
}

func (s *HandlerTestSuite) TestReply() {
	now := time.Now().UnixMilli()
	parent := dao.Comment{PostID: testPostID, Username: "a", Email: "a@b.c",
		Content: "<p>父</p>", IsApproved: true, Ctime: now, Utime: now}
	s.NoError(s.db.Create(&parent).Error)
	// 开着审核也不影响站长回复
	s.contentSettings.RequireCommentReview = true

	recorder := test.NewJSONResponseRecorder[int64]()
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/reply",
		iox.NewJSONReader(web.ReplyReq{
			PostID:   testPostID,
			ParentID: parent.ID,
			Content:  "谢谢支持",
		}))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)

	id := recorder.MustScan().Data
	var created dao.Comment
	s.NoError(s.db.First(&created, id).Error)
	s.Equal(parent.ID, created.ParentID)
	s.True(created.IsApproved)
}

func (s *HandlerTestSuite) TestManageList() {
	now := time.Now().UnixMilli()
	for i := 0; i < 3; i++ {
		c := dao.Comment{PostID: testPostID, Username: "a", Email: "a@b.c",
			Content: "<p>x</p>", IsApproved: i%2 == 0, Ctime: now, Utime: now}
		s.NoError(s.db.Create(&c).Error)
	}

	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/manage/list",
		iox.NewJSONReader(web.PageReq{Offset: 0, Limit: 2}))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)

	data := recorder.MustScan().Data
	s.Equal(3, data.Total)
	s.Len(data.List, 2)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
