package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mblog/internal/comment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	commentsClosedResult = ginx.Result{
		Code: errs.CommentsClosed.Code,
		Msg:  errs.CommentsClosed.Msg,
	}
	commentNotCreatedResult = ginx.Result{
		Code: errs.CommentNotCreated.Code,
		Msg:  errs.CommentNotCreated.Msg,
	}
	commentNotFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
)
