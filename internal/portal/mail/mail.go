// Package mail delivers invitation emails. Delivery is an external
// capability; the service layer only sees the Mailer interface and treats
// any delivery error as fatal to the invitation.
package mail

import (
	"context"

	"github.com/harborfin/rollover/internal/portal/domain"
)

// Invitation is everything an invitation email needs: who it is for, the
// raw one-shot token, and the invite metadata shown to the recipient.
type Invitation struct {
	Email string
	Token string
	Meta  domain.InviteMeta

	FirmName    string
	InviterName string
}

// Mailer sends invitation emails.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}
