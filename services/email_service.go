package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"net/url"
	"time"

	"github.com/Dosada05/court-booking/config"
)

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.Email}},</p>
  <p>We received a request to reset your password. The link is valid for one hour.</p>
  <p><a href="{{.ResetLink}}">Reset password</a></p>
  <p>If you did not request this, ignore this email.</p>
</body>
</html>`))

// smtpTimeout ограничивает весь SMTP-диалог, если у ctx нет более раннего дедлайна.
const smtpTimeout = 10 * time.Second

type EmailService struct {
	cfg         config.SMTPConfig
	frontendURL string
	logger      *slog.Logger
	dial        func(ctx context.Context, network, addr string) (net.Conn, error)
	send        func(ctx context.Context, to []string, msg []byte) error
}

func NewEmailService(cfg config.SMTPConfig, frontendURL string, logger *slog.Logger) *EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &EmailService{cfg: cfg, frontendURL: frontendURL, logger: logger}
	s.dial = (&net.Dialer{}).DialContext
	s.send = s.sendSMTP
	return s
}

func (s *EmailService) SendEmail(ctx context.Context, to []string, subject string, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	if !s.cfg.Enabled() {
		s.logger.InfoContext(ctx, "smtp is not configured, email not sent",
			slog.Any("to", to), slog.String("subject", subject))
		return nil
	}

	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + s.cfg.From + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	return s.send(ctx, to, msg)
}

func (s *EmailService) sendSMTP(ctx context.Context, to []string, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, smtpTimeout)
	defer cancel()

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsconfig := &tls.Config{ServerName: s.cfg.Host}

	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()
	// Дедлайн на соединении покрывает и зависший сервер после установки соединения.
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("smtp deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if s.cfg.Port == 465 {
		conn = tls.Client(conn, tlsconfig)
	}
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if s.cfg.Port != 465 {
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("starttls: %w", err)
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}
	return nil
}

func (s *EmailService) SendPasswordResetEmail(ctx context.Context, email, resetToken string) error {
	data := struct {
		Email     string
		ResetLink string
	}{
		Email:     email,
		ResetLink: fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(resetToken)),
	}

	var body bytes.Buffer
	if err := passwordResetTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render password reset email: %w", err)
	}
	return s.SendEmail(ctx, []string{email}, "Password reset", body.String())
}
