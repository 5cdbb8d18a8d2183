package http

import (
	"encoding/json"
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

// SharingHandler serves the access-grant endpoints under
// /v1/clients/{id}/access.
type SharingHandler struct {
	SharingService *service.SharingService
	Guard          *service.Guard
}

// HandleList godoc
//
//	@Summary		List Client Access
//	@Description	List every advisor who can see the client's data. Callable by the client themselves or an advisor holding a grant for them.
//	@Tags			Sharing
//	@Produce		json
//	@Param			id	path		string						true	"Client user id"
//	@Success		200	{object}	portalsdk.AccessListResponse	"grants"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/access [get].
func (h *SharingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}
	clientID := r.PathValue("id")

	actor, err := h.Guard.ActorFor(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := h.Guard.RequireClientAccess(ctx, actor, clientID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	grants, err := h.SharingService.ListForClient(ctx, actor, clientID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.AccessListResponse{Grants: make([]portalsdk.AccessGrant, 0, len(grants))}
	for _, g := range grants {
		resp.Grants = append(resp.Grants, portalsdk.AccessGrant{
			ClientID:     g.Grant.ClientID,
			AdvisorID:    g.Grant.AdvisorID,
			AdvisorName:  g.Advisor.DisplayName(),
			AdvisorEmail: g.Advisor.Email,
			GrantedBy:    g.Grant.GrantedBy,
			CreatedAt:    g.Grant.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGrant godoc
//
//	@Summary		Grant Client Access
//	@Description	Share a client's data with another advisor in the same firm. The caller must already hold access to the client.
//	@Description	Granting an existing pair is a no-op and returns the existing grant.
//	@Tags			Sharing
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Client user id"
//	@Param			request	body		portalsdk.GrantAccessRequest	true	"Advisor to grant"
//	@Success		200		{object}	portalsdk.AccessGrant			"client_id, advisor_id, granted_by, created_at"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/access [post].
func (h *SharingHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}
	clientID := r.PathValue("id")

	var req portalsdk.GrantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.AdvisorID == "" {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "advisor_id is required")
		return
	}

	actor, err := h.Guard.ActorFor(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	g, err := h.SharingService.Grant(ctx, actor, clientID, req.AdvisorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.AccessGrant{
		ClientID:  g.ClientID,
		AdvisorID: g.AdvisorID,
		GrantedBy: g.GrantedBy,
		CreatedAt: g.CreatedAt,
	})
}

// HandleRevoke godoc
//
//	@Summary		Revoke Client Access
//	@Description	Remove an advisor's access to a client. Any advisor with access may revoke any grant for that client, including their own; clients may cut off any advisor.
//	@Description	Revoking an absent grant is a no-op.
//	@Tags			Sharing
//	@Produce		json
//	@Param			id			path	string	true	"Client user id"
//	@Param			advisorID	path	string	true	"Advisor user id"
//	@Success		204			"no content"
//	@Failure		401			{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/access/{advisorID} [delete].
func (h *SharingHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}
	clientID := r.PathValue("id")
	advisorID := r.PathValue("advisorID")

	actor, err := h.Guard.ActorFor(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.SharingService.Revoke(ctx, actor, clientID, advisorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
