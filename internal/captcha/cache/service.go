package cache

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mblog/internal/captcha"
	"github.com/lithammer/shortuuid/v4"
)

// Service 验证码存缓存里，过期自动失效
type Service struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

func NewService(c ecache.Cache) *Service {
	return &Service{
		cache: &ecache.NamespaceCache{
			Namespace: "captcha:",
			C:         c,
		},
		// 默认五分钟
		expiration: time.Minute * 5,
	}
}

func (s *Service) Generate(ctx context.Context) (captcha.Challenge, error) {
	challenge := captcha.Challenge{
		ID:   shortuuid.New(),
		Code: s.generateCode(),
	}
	err := s.cache.Set(ctx, challenge.ID, challenge.Code, s.expiration)
	if err != nil {
		return captcha.Challenge{}, err
	}
	return challenge, nil
}

func (s *Service) Verify(ctx context.Context, id string, code string) bool {
	if id == "" || code == "" {
		return false
	}
	val := s.cache.Get(ctx, id)
	if val.Err != nil || val.KeyNotFound() {
		return false
	}
	stored, ok := val.Val.(string)
	if !ok || stored != code {
		return false
	}
	// 一次性消费
	_, _ = s.cache.Delete(ctx, id)
	return true
}

func (s *Service) generateCode() string {
	bytes := make([]byte, 6)
	_, _ = rand.Read(bytes)
	code := ""
	for _, b := range bytes {
		code += fmt.Sprintf("%d", int(b)%10)
	}
	return code
}
