package ioc

import (
	"github.com/ecodeclub/mblog/internal/email"
	emailgomail "github.com/ecodeclub/mblog/internal/email/gomail"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/gomail.v2"
)

func InitEmailService() email.Service {
	type Config struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	return emailgomail.NewService(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password))
}
