package errs

var (
	SystemError   = ErrorCode{Code: 513001, Msg: "系统错误"}
	PostNotFound  = ErrorCode{Code: 513002, Msg: "文章不存在"}
	DuplicateSlug = ErrorCode{Code: 513003, Msg: "链接别名已经存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
