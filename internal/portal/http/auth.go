package http

import (
	"encoding/json"
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Sign In
//	@Description	Authenticate with email and password and receive a bearer session token.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalsdk.LoginResponse	"access_token, token_type, expires_at, user"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "email and password are required")
		return
	}

	sess, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.LoginResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresAt:   sess.ExpiresAt.Unix(),
		User: portalsdk.UserProfile{
			ID:        sess.Identity.ID,
			Email:     sess.Identity.Email,
			FirstName: sess.Identity.FirstName,
			LastName:  sess.Identity.LastName,
		},
	})
}

type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Sign Out
//	@Description	End the current session. Bearer tokens are stateless, so the client must also discard its copy.
//	@Tags			Sessions
//	@Produce		json
//	@Success		204	"no content"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}

	h.SessionService.Logout(r.Context(), userID)
	w.WriteHeader(http.StatusNoContent)
}
