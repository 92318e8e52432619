package service

import (
	"context"
	"regexp"

	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/ecodeclub/mblog/internal/comment/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AntiSpamGate 提交评论之前的拦截，先看格式再验证码，
// 格式不对的连验证码都不消费
type AntiSpamGate struct {
	captchaSvc captcha.Service
}

func NewAntiSpamGate(captchaSvc captcha.Service) *AntiSpamGate {
	return &AntiSpamGate{captchaSvc: captchaSvc}
}

func (g *AntiSpamGate) Check(ctx context.Context, sub domain.CommentSubmission) error {
	if !emailRegexp.MatchString(sub.Email) {
		return ErrInvalidEmail
	}
	if !g.captchaSvc.Verify(ctx, sub.CaptchaID, sub.CaptchaCode) {
		return ErrInvalidCaptcha
	}
	return nil
}
