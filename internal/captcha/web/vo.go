package web

import "github.com/ecodeclub/mblog/internal/captcha"

type Challenge struct {
	ID string `json:"id"`
	// 前端渲染层负责把码呈现给访客
	Code string `json:"code"`
}

func newChallenge(c captcha.Challenge) Challenge {
	return Challenge{
		ID:   c.ID,
		Code: c.Code,
	}
}
