package errs

var (
	SystemError       = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 512002, Msg: "参数非法"}
	CommentsClosed    = ErrorCode{Code: 512003, Msg: "评论已关闭"}
	CommentNotCreated = ErrorCode{Code: 512004, Msg: "评论创建失败"}
	CommentNotFound   = ErrorCode{Code: 512005, Msg: "评论不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
