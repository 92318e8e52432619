package service

import (
	"github.com/ecodeclub/mblog/internal/settings"
)

type Decision uint8

const (
	// DecisionRejected 评论功能整个关着
	DecisionRejected Decision = iota
	// DecisionAutoApproved 直接过审公开
	DecisionAutoApproved
	// DecisionPendingReview 先落库，等站长人工放行
	DecisionPendingReview
)

// Decide 纯函数，根据站点配置决定新评论的去向
func Decide(cs settings.ContentSettings) Decision {
	if !cs.EnableComments {
		return DecisionRejected
	}
	if cs.RequireCommentReview {
		return DecisionPendingReview
	}
	return DecisionAutoApproved
}
