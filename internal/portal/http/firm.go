package http

import (
	"net/http"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/portalsdk"
)

type FirmHandler struct {
	MembershipService *service.MembershipService
	Guard             *service.Guard
}

// ServeHTTP godoc
//
//	@Summary		Firm Directory
//	@Description	Return the caller's firm and its member directory. Any member of the firm may read this.
//	@Tags			Firm
//	@Produce		json
//	@Success		200	{object}	portalsdk.FirmResponse	"id, name, members"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/firm [get].
func (h *FirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidToken, "Authentication required")
		return
	}

	actor, err := h.Guard.ActorFor(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	overview, err := h.MembershipService.GetFirmOverview(ctx, actor.FirmID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.FirmResponse{
		ID:      overview.Firm.ID,
		Name:    overview.Firm.Name,
		Members: make([]portalsdk.FirmMember, 0, len(overview.Members)),
	}
	for _, m := range overview.Members {
		resp.Members = append(resp.Members, portalsdk.FirmMember{
			UserProfile: portalsdk.UserProfile{
				ID:        m.Identity.ID,
				Email:     m.Identity.Email,
				FirstName: m.Identity.FirstName,
				LastName:  m.Identity.LastName,
				Role:      string(m.Role),
			},
			JoinedAt: m.JoinedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
