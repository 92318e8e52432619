package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/post/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	postNotFoundResult = ginx.Result{
		Code: errs.PostNotFound.Code,
		Msg:  errs.PostNotFound.Msg,
	}
	duplicateSlugResult = ginx.Result{
		Code: errs.DuplicateSlug.Code,
		Msg:  errs.DuplicateSlug.Msg,
	}
)
