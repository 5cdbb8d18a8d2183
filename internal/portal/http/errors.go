package http

import (
	"errors"
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
	"github.com/harborfin/rollover/pkg/slogx"
)

// writeServiceError maps service-layer sentinels onto the wire. Anything
// unmapped is a 500 with a generic body; details stay in the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInviteRequest),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrCannotGrantSelf):
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidGrant, "invalid email or password")

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNoClientAccess),
		errors.Is(err, service.ErrNotMemberOfFirm):
		httpx.WriteError(w, http.StatusForbidden, portalsdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrInviteAlreadyUsed):
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidToken, err.Error())

	case errors.Is(err, service.ErrFirmNotFound):
		httpx.WriteError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrNotAClient),
		errors.Is(err, service.ErrNotAnAdvisor),
		errors.Is(err, service.ErrDifferentFirm):
		httpx.WriteError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInviteDeliveryFailed):
		httpx.WriteError(w, http.StatusBadGateway, portalsdk.ErrorCodeDeliveryFailed,
			"invitation email could not be delivered, please retry")

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
			"an internal error occurred")
	}
}

// callerID pulls the authenticated user id out of the request context. The
// authn middleware guarantees it for secured routes.
func callerID(r *http.Request) (string, bool) {
	id := httpx.UserIDFromContext(r.Context())
	return id, id != ""
}
