// Package smtp implements the ports.Mailer transport over net/smtp.
package smtp

import (
	"context"
	"fmt"
	"mime/quotedprintable"
	"net/smtp"
	"strings"
)

// Config captures the settings for the SMTP transport.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Mailer sends mail through a single SMTP endpoint, initialized once at
// startup and shared across all requests.
type Mailer struct {
	cfg  Config
	auth smtp.Auth
	// sendMail is swappable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer validates the configuration and returns a Mailer.
func NewMailer(cfg Config) (*Mailer, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Mailer{cfg: cfg, auth: auth, sendMail: smtp.SendMail}, nil
}

// Send delivers one message with both plain-text and HTML bodies as a
// multipart/alternative payload.
func (m *Mailer) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := m.buildMessage(to, subject, textBody, htmlBody)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.sendMail(addr, m.auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

const mimeBoundary = "=_zomma_alt_boundary"

func (m *Mailer) buildMessage(to, subject, textBody, htmlBody string) ([]byte, error) {
	fromHeader := m.cfg.From
	if strings.TrimSpace(m.cfg.FromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	var b strings.Builder
	headers := []string{
		"From: " + fromHeader,
		"To: " + to,
		"Reply-To: " + m.cfg.From,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: multipart/alternative; boundary="` + mimeBoundary + `"`,
	}
	b.WriteString(strings.Join(headers, "\r\n"))
	b.WriteString("\r\n\r\n")

	if err := writePart(&b, "text/plain", textBody); err != nil {
		return nil, err
	}
	if err := writePart(&b, "text/html", htmlBody); err != nil {
		return nil, err
	}
	b.WriteString("--" + mimeBoundary + "--\r\n")

	return []byte(b.String()), nil
}

func writePart(b *strings.Builder, contentType, body string) error {
	b.WriteString("--" + mimeBoundary + "\r\n")
	b.WriteString("Content-Type: " + contentType + `; charset="UTF-8"` + "\r\n")
	b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	w := quotedprintable.NewWriter(b)
	if _, err := w.Write([]byte(body)); err != nil {
		return fmt.Errorf("encode %s part: %w", contentType, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode %s part: %w", contentType, err)
	}
	b.WriteString("\r\n")
	return nil
}
