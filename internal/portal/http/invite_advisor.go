package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
	"github.com/harborfin/rollover/pkg/slogx"
)

// InviteAdvisorHandler is the admin surface for advisor onboarding. It is
// authenticated by a static admin token, not a user session: advisors are
// invited by the operator before any user exists.
type InviteAdvisorHandler struct {
	InviteService *service.InviteService
	AdminToken    string
}

// ServeHTTP godoc
//
//	@Summary		Invite Advisor
//	@Description	Invite an advisor into a firm, creating the firm if it does not exist. The first member of a firm becomes its owner.
//	@Description	Requires the service admin token as the bearer credential.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InviteAdvisorRequest	true	"Advisor invitation"
//	@Success		200		{object}	portalsdk.InviteResponse		"user_id, email, firm_id, role, invited"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		502		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/advisor [post].
func (h *InviteAdvisorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if !h.authorized(r) {
		log.Warn("advisor invite rejected, bad admin token", "remote", r.RemoteAddr)
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}

	var req portalsdk.InviteAdvisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	res, err := h.InviteService.InviteAdvisor(ctx, service.InviteAdvisorRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FirmName:  req.FirmName,
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

func (h *InviteAdvisorHandler) authorized(r *http.Request) bool {
	if h.AdminToken == "" {
		return false
	}
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return false
	}
	presented := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.AdminToken)) == 1
}
