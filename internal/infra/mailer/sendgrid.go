package mailer

import (
	"context"
	"fmt"
	"time"

	"pata-go/internal/config"
	"pata-go/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer 基于 SendGrid 的验证码邮件投递
// 未启用时（本地开发）验证码直接打到日志
type Mailer struct {
	cfg *config.MailConfig
}

func New(cfg *config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOTP 发送登录验证码邮件
func (m *Mailer) SendOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	if !m.cfg.Enabled {
		logger.Info("Mail delivery disabled, OTP logged instead",
			zap.String("email", email),
			zap.String("code", code),
		)
		return nil
	}

	subject := "您的登录验证码"
	text := fmt.Sprintf("验证码：%s，%d 分钟内有效。如非本人操作请忽略本邮件。", code, int(ttl.Minutes()))
	html := fmt.Sprintf("<p>验证码：<strong>%s</strong></p><p>%d 分钟内有效。如非本人操作请忽略本邮件。</p>", code, int(ttl.Minutes()))

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, text, html)

	client := sendgrid.NewSendClient(m.cfg.APIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send otp mail: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	logger.Info("OTP mail sent", zap.String("email", email), zap.Int("status", resp.StatusCode))
	return nil
}
