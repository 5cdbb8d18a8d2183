package http

import (
	"encoding/json"
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

type InviteAcceptHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem a one-shot invitation token, set the account password and activate the account.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.AcceptInviteRequest	true	"Invitation token and chosen password"
//	@Success		200		{object}	portalsdk.AcceptInviteResponse	"user"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	ident, err := h.SessionService.AcceptInvite(ctx, req.Token, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.AcceptInviteResponse{
		User: portalsdk.UserProfile{
			ID:        ident.ID,
			Email:     ident.Email,
			FirstName: ident.FirstName,
			LastName:  ident.LastName,
		},
	})
}
