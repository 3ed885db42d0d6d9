package contact

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"os"
	"time"
)

// Mailer delivers a rendered Email.
type Mailer interface {
	Send(ctx context.Context, e *Email) error
}

// SMTPConfig locates the mail server and the inbox that receives messages.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Pass     string
	To       string
	FromName string
}

// SMTPConfigFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS,
// TO_EMAIL and FROM_NAME, with development defaults for the server.
func SMTPConfigFromEnv() SMTPConfig {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		User:     os.Getenv("SMTP_USER"),
		Pass:     os.Getenv("SMTP_PASS"),
		To:       os.Getenv("TO_EMAIL"),
		FromName: os.Getenv("FROM_NAME"),
	}
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	if cfg.FromName == "" {
		cfg.FromName = "Portfolio Contact"
	}
	return cfg
}

// Configured reports whether credentials and a recipient are set.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != "" && c.To != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through an SMTP server with PLAIN auth.
type SMTPMailer struct {
	cfg  SMTPConfig
	send sendFunc
	now  func() time.Time
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, now: time.Now}
}

// Send delivers e. net/smtp has no cancellation, so ctx is only checked
// before dialing.
func (m *SMTPMailer) Send(ctx context.Context, e *Email) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, m.message(e)); err != nil {
		return fmt.Errorf("smtp send via %s: %w", addr, err)
	}
	return nil
}

func (m *SMTPMailer) message(e *Email) []byte {
	from := mail.Address{Name: m.cfg.FromName, Address: m.cfg.User}

	var b bytes.Buffer
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}
	header("From", from.String())
	header("To", m.cfg.To)
	if e.ReplyTo != "" {
		header("Reply-To", e.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", e.Subject))
	header("Date", m.now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(e.HTML)
	b.WriteString("\r\n")
	return b.Bytes()
}
