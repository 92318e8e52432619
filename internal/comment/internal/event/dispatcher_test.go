package event

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/mblog/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmailService 不用 gomock，发送发生在另一个 goroutine 里，
// 用 channel 同步最稳妥
type fakeEmailService struct {
	ch     chan email.Mail
	err    error
	panics bool
}

func (f *fakeEmailService) SendMail(_ context.Context, mail email.Mail) error {
	if f.panics {
		close(f.ch)
		panic("mock panic")
	}
	f.ch <- mail
	return f.err
}

func notification() CommentNotification {
	return CommentNotification{
		To:        "admin@example.com",
		PostTitle: "第一篇文章",
		Username:  "tom<script>",
		Email:     "tom@example.com",
		Content:   "<p>好文</p>",
	}
}

func TestEmailDispatcher_Dispatch(t *testing.T) {
	t.Parallel()
	svc := &fakeEmailService{ch: make(chan email.Mail, 1)}
	d := NewEmailDispatcher(svc)

	d.Dispatch(notification())

	select {
	case mail := <-svc.ch:
		assert.Equal(t, "admin@example.com", mail.To)
		assert.Contains(t, mail.Subject, "第一篇文章")
		body := string(mail.Body)
		// 署名要转义，评论内容本身已经是安全的 HTML
		assert.Contains(t, body, "tom&lt;script&gt;")
		assert.Contains(t, body, "<p>好文</p>")
	case <-time.After(time.Second):
		require.Fail(t, "通知没有发出去")
	}
}

func TestEmailDispatcher_Dispatch_发送失败不影响调用方(t *testing.T) {
	t.Parallel()
	svc := &fakeEmailService{
		ch:  make(chan email.Mail, 1),
		err: errors.New("mock send error"),
	}
	d := NewEmailDispatcher(svc)

	// Dispatch 本身立刻返回，错误只会进日志
	d.Dispatch(notification())

	select {
	case <-svc.ch:
	case <-time.After(time.Second):
		require.Fail(t, "通知没有发出去")
	}
}

func TestEmailDispatcher_Dispatch_Panic被兜住(t *testing.T) {
	t.Parallel()
	svc := &fakeEmailService{ch: make(chan email.Mail), panics: true}
	d := NewEmailDispatcher(svc)

	d.Dispatch(notification())

	select {
	case _, ok := <-svc.ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		require.Fail(t, "发送逻辑没被执行")
	}
	// 给 recover 一点时间，panic 没被兜住的话整个测试进程都会挂
	time.Sleep(50 * time.Millisecond)
}

func TestEmailDispatcher_body(t *testing.T) {
	t.Parallel()
	d := NewEmailDispatcher(nil)
	body := d.body(CommentNotification{
		Username:  "a&b",
		Email:     "a@b.com",
		PostTitle: "<标题>",
		Content:   "<p>内容</p>",
	})
	assert.True(t, strings.Contains(body, "a&amp;b"))
	assert.True(t, strings.Contains(body, "&lt;标题&gt;"))
	assert.True(t, strings.Contains(body, "<p>内容</p>"))
}
