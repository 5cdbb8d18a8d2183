package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/httpx"
	"github.com/harborfin/rollover/pkg/jwtx"
	"github.com/harborfin/rollover/pkg/slogx"

	_ "github.com/harborfin/rollover/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	adminToken   string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	Guard             *service.Guard
	SessionService    *service.SessionService
	InviteService     *service.InviteService
	MembershipService *service.MembershipService
	SharingService    *service.SharingService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	adminToken, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		adminToken:   adminToken,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerInvites()
	r.registerFirm()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollover Portal API
//	@version		0.1.0
//	@description	Backend for the rollover portal: firm and advisor onboarding, client invitations,
//	@description	and the advisor-client access grants that gate who may see whose data.
//	@description
//	@description				Sessions are bearer JWTs signed with EdDSA (Ed25519).
//
//	@contact.name				Harbor Financial Engineering
//	@contact.url				https://github.com/harborfin/rollover
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSessions() {
	loginHandler := &LoginHandler{SessionService: r.SessionService}
	logoutHandler := &LogoutHandler{SessionService: r.SessionService}

	// POST /auth/login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvites() {
	advisorHandler := &InviteAdvisorHandler{
		InviteService: r.InviteService,
		AdminToken:    r.adminToken,
	}
	clientHandler := &InviteClientHandler{
		InviteService: r.InviteService,
		Guard:         r.Guard,
	}
	acceptHandler := &InviteAcceptHandler{SessionService: r.SessionService}

	// POST /invites/advisor - admin-token authenticated, moderate by IP
	r.Mux.Handle("POST /v1/invites/advisor",
		httpx.Chain(advisorHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /invites/client - authenticated mutation, moderate by user
	r.Mux.Handle("POST /v1/invites/client",
		httpx.Chain(clientHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /invites/accept - public signup endpoint, strict by IP
	r.Mux.Handle("POST /v1/invites/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerFirm() {
	h := &FirmHandler{
		MembershipService: r.MembershipService,
		Guard:             r.Guard,
	}

	r.Mux.Handle("GET /v1/firm",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClients() {
	clientsHandler := &ClientsHandler{
		SharingService: r.SharingService,
		Guard:          r.Guard,
	}
	sharingHandler := &SharingHandler{
		SharingService: r.SharingService,
		Guard:          r.Guard,
	}

	// GET /v1/clients - grant-filtered client listing
	r.Mux.Handle("GET /v1/clients",
		httpx.Chain(clientsHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Access-grant ledger per client
	r.Mux.Handle("GET /v1/clients/{id}/access",
		httpx.Chain(http.HandlerFunc(sharingHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/clients/{id}/access",
		httpx.Chain(http.HandlerFunc(sharingHandler.HandleGrant),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/clients/{id}/access/{advisorID}",
		httpx.Chain(http.HandlerFunc(sharingHandler.HandleRevoke),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient limits, monitoring polls these
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
