package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer delivers emails over SMTP. When no credentials are configured it
// runs in dev mode and only logs the message, so local setups work without a
// mail account.
type SMTPMailer struct {
	config  Config
	devMode bool
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		config:  cfg,
		devMode: cfg.Username == "" || cfg.Password == "",
	}
}

// SendOTP delivers a signup verification code.
func (m *SMTPMailer) SendOTP(to, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your one-time code is %s. It expires in 5 minutes.", code)
	return m.send(to, subject, body)
}

// SendPasswordReset delivers a password reset link.
func (m *SMTPMailer) SendPasswordReset(to, resetLink string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in 15 minutes.", resetLink)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	if m.devMode {
		log.Printf("[mailer dev mode] to=%s subject=%q body=%q", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.config.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := m.config.Host + ":" + m.config.Port
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
