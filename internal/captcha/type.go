package captcha

import "context"

//go:generate mockgen -source=./type.go -package=captchamocks -destination=./mocks/captcha.mock.go -typed Service
type Service interface {
	// Generate 签发一个验证码挑战，code 由前端渲染层呈现给访客
	Generate(ctx context.Context) (Challenge, error)
	// Verify 校验通过即消费掉该验证码，同一个码不能用两次
	Verify(ctx context.Context, id string, code string) bool
}

type Challenge struct {
	ID   string
	Code string
}
