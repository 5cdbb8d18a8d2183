package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/slogx"
)

var (
	ErrForbidden      = errors.New("caller is not permitted to perform this action")
	ErrNoClientAccess = errors.New("caller has no access grant for this client")
)

// Guard resolves a caller into an Actor and answers permission questions.
// Role and firm are always re-read from the store per request; nothing
// authorization-relevant is trusted from the session token.
type Guard struct {
	Store store.Store
}

// ActorFor loads the caller's membership and computes their capabilities.
func (g *Guard) ActorFor(ctx context.Context, userID string) (domain.Actor, error) {
	m, err := g.Store.Memberships().GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Actor{}, ErrNotMemberOfFirm
		}
		return domain.Actor{}, err
	}

	firm, err := g.Store.Firms().GetByID(ctx, m.FirmID)
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.ActorFor(m, firm.Name), nil
}

// RequireRole resolves the caller and checks their role is one of the
// allowed set.
func (g *Guard) RequireRole(ctx context.Context, userID string, roles ...domain.Role) (domain.Actor, error) {
	actor, err := g.ActorFor(ctx, userID)
	if err != nil {
		return domain.Actor{}, err
	}

	for _, r := range roles {
		if actor.Role == r {
			return actor, nil
		}
	}

	slogx.FromContext(ctx).Warn("role check failed",
		slog.String("user_id", userID),
		slog.String("role", string(actor.Role)),
	)
	return domain.Actor{}, ErrForbidden
}

// RequireClientAccess checks that the caller may view the given client's
// data. Clients always see their own data; advisors and owners need an
// explicit grant for that client.
func (g *Guard) RequireClientAccess(ctx context.Context, actor domain.Actor, clientID string) error {
	if actor.UserID == clientID {
		return nil
	}
	if !actor.Role.CanAdvise() {
		return ErrForbidden
	}

	_, err := g.Store.Grants().Get(ctx, clientID, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("client access denied, no grant",
				slog.String("advisor_id", actor.UserID),
				slog.String("client_id", clientID),
			)
			return ErrNoClientAccess
		}
		return err
	}
	return nil
}
