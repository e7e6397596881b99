package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"net/url"
	"strings"
)

type MailServiceInterface interface {
	SendPasswordResetMail(to, token string) error
}

// SMTPConfig holds the SMTP endpoint plus branding. An empty Host disables
// sending; the reset flow still records its notification either way.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg      SMTPConfig
	resetTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{
		cfg:      cfg,
		resetTpl: template.Must(template.New("resetHTML").Parse(resetMailTemplate)),
	}
}

func (s *smtpMailService) SendPasswordResetMail(to, token string) error {
	if s.cfg.Host == "" {
		log.Printf("SMTP not configured, skipping password reset mail for %s", to)
		return nil
	}

	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	var body bytes.Buffer
	err := s.resetTpl.Execute(&body, map[string]string{
		"AppName":   s.cfg.AppName,
		"ResetLink": link,
	})
	if err != nil {
		return err
	}

	return s.send(to, "Reset your password", body.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

const resetMailTemplate = `<!doctype html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;">
  <h2>{{.AppName}}</h2>
  <p>We received a request to reset your password. Click the button below to
  continue. If you didn't request this, you can safely ignore this email.</p>
  <p><a href="{{.ResetLink}}"
        style="background:#3D8A5A;color:#fff;padding:12px 20px;border-radius:6px;text-decoration:none;">
    Reset Password</a></p>
  <p>This link expires in 15 minutes.</p>
</body>
</html>`
