package mail

import (
	"context"

	"github.com/harborfin/rollover/pkg/slogx"
)

// DevMailer logs invitations instead of sending them. Used when no SMTP
// host is configured, which is the default in development and tests.
type DevMailer struct{}

func NewDevMailer() *DevMailer { return &DevMailer{} }

func (m *DevMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	slogx.FromContext(ctx).Info("invitation email (dev mode, not sent)",
		"email", inv.Email,
		"firm", inv.FirmName,
		"role", inv.Meta.Role,
		"inviter", inv.InviterName,
		"token", inv.Token,
	)
	return nil
}
