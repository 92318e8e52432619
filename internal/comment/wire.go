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

//go:build wireinject

package comment

import (
	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/ecodeclub/mblog/internal/comment/internal/event"
	"github.com/ecodeclub/mblog/internal/comment/internal/repository"
	"github.com/ecodeclub/mblog/internal/comment/internal/service"
	"github.com/ecodeclub/mblog/internal/comment/internal/web"
	"github.com/ecodeclub/mblog/internal/email"
	"github.com/ecodeclub/mblog/internal/pkg/timezone"
	"github.com/ecodeclub/mblog/internal/post"
	"github.com/ecodeclub/mblog/internal/settings"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitCommentModule(db *egorm.Component,
	sm *settings.Module,
	pm *post.Module,
	captchaSvc captcha.Service,
	emailSvc email.Service,
	tz timezone.Resolver) Module {
	wire.Build(
		initDAO,
		repository.NewCommentRepository,
		service.NewAntiSpamGate,
		service.NewCommentService,
		event.NewEmailDispatcher,
		wire.Bind(new(event.Dispatcher), new(*event.EmailDispatcher)),
		web.NewHandler,
		wire.FieldsOf(new(*settings.Module), "Svc"),
		wire.FieldsOf(new(*post.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return Module{}
}
