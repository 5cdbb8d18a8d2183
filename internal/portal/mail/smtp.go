package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the connection details for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// PortalURL is the base URL the accept-invite link points at.
	PortalURL string
}

// SMTPMailer sends invitations through a plain SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := m.render(inv)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{inv.Email}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) render(inv Invitation) []byte {
	link := strings.TrimRight(m.cfg.PortalURL, "/") + "/accept-invite?token=" + inv.Token

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", inv.Email)
	fmt.Fprintf(&b, "Subject: You've been invited to %s\r\n", inv.FirmName)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", inv.Meta.FirstName)
	fmt.Fprintf(&b, "%s has invited you to join %s as a %s.\r\n\r\n", inv.InviterName, inv.FirmName, inv.Meta.Role)
	fmt.Fprintf(&b, "Set up your account here:\r\n%s\r\n\r\n", link)
	b.WriteString("This link can only be used once and expires in 7 days.\r\n")
	return []byte(b.String())
}
