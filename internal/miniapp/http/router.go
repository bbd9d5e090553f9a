package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	ProfileService *service.ProfileService
	InviteService  *service.InviteService
	MessageService *service.MessageService
	BalanceService *service.BalanceService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerProfiles()
	r.registerInvites()
	r.registerMessages()
	r.registerBalance()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProfiles() {
	upsertHandler := &ProfileUpsertHandler{ProfileService: r.ProfileService}
	listHandler := &UsersListHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("POST /api/profile",
		httpx.Chain(upsertHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/users",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerInvites() {
	createHandler := &InviteCreateHandler{InviteService: r.InviteService}
	listHandler := &InvitesListHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /api/invite",
		httpx.Chain(createHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/invites",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerMessages() {
	sendHandler := &MessageSendHandler{MessageService: r.MessageService}
	chatHandler := &ChatHistoryHandler{MessageService: r.MessageService}

	r.Mux.Handle("POST /api/messages",
		httpx.Chain(sendHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/chat",
		httpx.Chain(chatHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerBalance() {
	balanceHandler := &BalanceAddHandler{BalanceService: r.BalanceService}
	subscribeHandler := &SubscribeHandler{BalanceService: r.BalanceService}

	r.Mux.Handle("POST /api/balance/add",
		httpx.Chain(balanceHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/subscribe",
		httpx.Chain(subscribeHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(LandingHandler(r.logger),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
