package gomail

import (
	"context"

	"github.com/ecodeclub/mblog/internal/email"

	"gopkg.in/gomail.v2"
)

// Service 基于 SMTP 的邮件发送实现
type Service struct {
	d *gomail.Dialer
}

func NewService(d *gomail.Dialer) *Service {
	return &Service{
		d: d,
	}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	from := mail.From
	if from == "" {
		from = s.d.Username
	}
	m.SetHeader("From", from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	return s.d.DialAndSend(m)
}
