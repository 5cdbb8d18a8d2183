package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/cryptox"
	"github.com/harborfin/rollover/pkg/jwtx"
	"github.com/harborfin/rollover/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInviteNotFound     = errors.New("invite not found or expired")
	ErrInviteAlreadyUsed  = errors.New("invite has already been used")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// MinPasswordLength applies to accept-invite; existing hashes are never
// re-validated against it.
const MinPasswordLength = 10

// SessionService issues and ends portal sessions, and redeems invitation
// tokens into active accounts.
type SessionService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// Session is an issued token plus who it belongs to.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
}

// Login verifies credentials and issues a session token. All failure modes
// collapse into ErrInvalidCredentials so responses don't leak which emails
// have accounts.
func (s *SessionService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	ident, err := s.Store.Identities().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if ident.Status != domain.IdentityActive || ident.PasswordHash == "" {
		log.Warn("login attempt on pending account", slog.String("user_id", ident.ID))
		return Session{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, ident.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login failed, bad password", slog.String("user_id", ident.ID))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(ident.ID, ident.Email, ident.DisplayName(), s.ttl(), s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("session issued", slog.String("user_id", ident.ID))
	return Session{
		Token:     token,
		ExpiresAt: now.Add(s.ttl()),
		Identity:  ident,
	}, nil
}

// AcceptInvite redeems a one-shot setup token, sets the account password
// and activates the identity. It performs the following steps:
// 1. Looks up the invite by token fingerprint
// 2. Rejects used or expired invites
// 3. Hashes the chosen password
// 4. Consumes the invite and activates the identity atomically
func (s *SessionService) AcceptInvite(ctx context.Context, token, password string) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.Identity{}, ErrInviteNotFound
	}
	if len(password) < MinPasswordLength {
		return domain.Identity{}, ErrWeakPassword
	}

	// 1. Fingerprint the token and look up the invite.
	fingerprint := cryptox.FingerprintToken(token)
	invite, err := s.Store.Invites().GetByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite redemption attempted with unknown token")
			return domain.Identity{}, ErrInviteNotFound
		}
		return domain.Identity{}, err
	}

	// 2. Reject used and expired invites up front for distinct errors;
	// MarkUsed re-checks both atomically.
	now := time.Now().UTC()
	if invite.Used {
		log.Warn("invite redemption attempted on used invite",
			slog.String("invite_id", invite.ID),
			slog.String("used_by", invite.UsedBy),
		)
		return domain.Identity{}, ErrInviteAlreadyUsed
	}
	if now.After(invite.ExpiresAt) {
		return domain.Identity{}, ErrInviteNotFound
	}

	// 3. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Identity{}, err
	}

	// 4. Consume the invite and activate the identity atomically. Two
	// racing redeemers serialize on MarkUsed; the loser sees no row.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().MarkUsed(ctx, invite.ID, invite.UserID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteAlreadyUsed
			}
			return err
		}
		return tx.Identities().Activate(ctx, invite.UserID, passwordHash)
	})
	if err != nil {
		return domain.Identity{}, err
	}

	ident, err := s.Store.Identities().GetByID(ctx, invite.UserID)
	if err != nil {
		return domain.Identity{}, err
	}

	log.Info("invite accepted, account activated",
		slog.String("user_id", ident.ID),
		slog.String("invite_id", invite.ID),
	)
	return ident, nil
}

// Logout ends a session. Tokens are stateless bearer JWTs, so the server
// side is just an audit log entry; the client discards the token.
func (s *SessionService) Logout(ctx context.Context, userID string) {
	slogx.FromContext(ctx).Info("session ended", slog.String("user_id", userID))
}
