package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/slogx"

	_ "github.com/aussiebroadwan/stacks/api/library" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits groups the rate limit profiles applied per route class.
type Limits struct {
	Auth  httpx.RateLimitConfig // sign-up and sign-in
	Write httpx.RateLimitConfig // catalog, lending and profile writes
	Read  httpx.RateLimitConfig // listings, lookups and health
}

// DefaultLimits reads the httpx profiles, which honour RATELIMIT_* overrides.
func DefaultLimits() Limits {
	return Limits{
		Auth:  httpx.StrictLimit,
		Write: httpx.ModerateLimit,
		Read:  httpx.LenientLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	Limits      Limits
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	CatalogService *service.CatalogService
	LendingService *service.LendingService
	ListingService *service.ListingService
	UserService    *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		Limits:       DefaultLimits(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,

		store:          st,
		CatalogService: &service.CatalogService{Store: st},
		LendingService: &service.LendingService{Store: st},
		ListingService: &service.ListingService{Store: st},
		UserService:    &service.UserService{Store: st},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every endpoint. Limits must be final before the call.
func (r *Router) ApplyRoutes() {
	r.registerBooks()
	r.registerLoans()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Stacks Library Service API
//	@version		0.1.0
//	@description	Library catalog and lending service. Every endpoint replies with a {message, code, data} envelope whose code mirrors the HTTP status.
//	@description
//	@description	Callers identify themselves by username; there is no session mechanism.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/stacks
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerBooks() {
	h := &BooksHandler{
		CatalogService: r.CatalogService,
		ListingService: r.ListingService,
	}

	// Catalog writes are keyed by IP + acting username
	r.Mux.Handle("POST /v1/books",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			httpx.RateLimitByUser(r.Limits.Write),
		),
	)
	r.Mux.Handle("PUT /v1/books/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByUser(r.Limits.Write),
		),
	)

	r.Mux.Handle("GET /v1/books",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
	r.Mux.Handle("GET /v1/books/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
}

func (r *Router) registerLoans() {
	h := &LoansHandler{
		LendingService: r.LendingService,
		ListingService: r.ListingService,
	}

	r.Mux.Handle("POST /v1/loans/borrow",
		httpx.Chain(http.HandlerFunc(h.HandleBorrow),
			httpx.RateLimitByUser(r.Limits.Write),
		),
	)
	r.Mux.Handle("POST /v1/loans/return",
		httpx.Chain(http.HandlerFunc(h.HandleReturn),
			httpx.RateLimitByUser(r.Limits.Write),
		),
	)
	r.Mux.Handle("GET /v1/loans",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Strict limits on credential endpoints to slow password guessing
	r.Mux.Handle("POST /v1/users/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.RateLimitByIP(r.Limits.Auth),
		),
	)
	r.Mux.Handle("POST /v1/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(r.Limits.Auth),
		),
	)

	r.Mux.Handle("PUT /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.RateLimitByIP(r.Limits.Write),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(r.Limits.Write),
		),
	)
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
}
