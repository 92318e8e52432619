package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/captcha/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
