package http

import (
	"net/http"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

type ClientsHandler struct {
	SharingService *service.SharingService
	Guard          *service.Guard
}

// ServeHTTP godoc
//
//	@Summary		List My Clients
//	@Description	List the clients the caller holds access grants for. Grant-filtered: clients in the firm without a grant never appear.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{object}	portalsdk.ClientsResponse	"clients"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients [get].
func (h *ClientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}

	// Only advisors and owners hold grants, so the role check doubles as
	// the access check.
	actor, err := h.Guard.RequireRole(ctx, userID, domain.RoleOwner, domain.RoleAdvisor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	clients, err := h.SharingService.ClientsForAdvisor(ctx, actor.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.ClientsResponse{Clients: make([]portalsdk.UserProfile, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, portalsdk.UserProfile{
			ID:        c.ID,
			Email:     c.Email,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Role:      string(domain.RoleClient),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
