package http

import (
	"encoding/json"
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

type InviteClientHandler struct {
	InviteService *service.InviteService
	Guard         *service.Guard
}

// ServeHTTP godoc
//
//	@Summary		Invite Client
//	@Description	Invite a client into the caller's firm. The firm always comes from the caller's own membership.
//	@Description	The inviting advisor is automatically granted access to the new client.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InviteClientRequest	true	"Client invitation"
//	@Success		200		{object}	portalsdk.InviteResponse		"user_id, email, firm_id, role, invited"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		502		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/client [post].
func (h *InviteClientHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}

	var req portalsdk.InviteClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	actor, err := h.Guard.ActorFor(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := h.InviteService.InviteClient(ctx, actor, service.InviteClientRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.InviteResponse{
		UserID:  res.UserID,
		Email:   res.Email,
		FirmID:  res.FirmID,
		Role:    string(res.Role),
		Invited: res.Invited,
	})
}
