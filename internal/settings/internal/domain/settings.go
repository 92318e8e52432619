package domain

// ContentSettings 站点内容相关的开关，存库，改完下一个请求就生效
type ContentSettings struct {
	// 站点级别的评论总开关
	EnableComments bool
	// 新评论是否要人工审核后才公开
	RequireCommentReview bool
	// 待审核的评论创建成功后要不要把内容回显给提交者
	EchoPendingComment bool
}

// NotificationSettings 通知相关配置
type NotificationSettings struct {
	// 有新评论时给站长发邮件
	SendEmailOnNewComment bool
	// 收通知的邮箱
	AdminEmail string
}
