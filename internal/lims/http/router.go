package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"

	_ "github.com/aussiebroadwan/ancestrybio/api/lims" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metrics.Metrics

	store store.Store
	blob  blob.Store

	AuthService      *service.AuthService
	BootstrapService *service.BootstrapService
	UserService      *service.UserService
	EnzymeService    *service.EnzymeService
	OrganismService  *service.OrganismService
	FileService      *service.FileService
	BatchService     *service.BatchService
	StatsService     *service.StatsService
}

// NewRouter builds a router with the global middleware chain. m may be nil,
// in which case /metrics is not served.
func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	objects blob.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      m,
		store:        st,
		blob:         objects,
	}

	// Set default middleware chain. Metrics sits innermost so it sees the
	// pattern the mux matched.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if m != nil {
		r.middlewares = append(r.middlewares, m.Middleware)
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerEnzymes()
	r.registerOrganisms()
	r.registerFiles()
	r.registerBatches()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AncestryBio LIMS API
//	@version		0.1.0
//	@description	Laboratory information management for biosynthetic cannabinoid production: enzymes, host organisms, production batches and yield tracking.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs issued by /v1/auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/ancestrybio
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, the role gate and a per-user limit.
func (r *Router) secured(h http.HandlerFunc, role domain.Role, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		requireRole(role),                 // enforce role hierarchy
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP to slow brute force
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Any authenticated user may read or rename themselves
	r.Mux.Handle("GET /v1/auth/me", r.secured(h.HandleMe, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/auth/me", r.secured(h.HandleUpdateMe, domain.RoleLabTech, httpx.ModerateLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users", r.secured(h.HandleList, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/users/{id}/role", r.secured(h.HandleChangeRole, domain.RoleAdmin, httpx.ModerateLimit))
}

func (r *Router) registerEnzymes() {
	h := &EnzymesHandler{EnzymeService: r.EnzymeService}

	r.Mux.Handle("GET /v1/enzymes", r.secured(h.HandleList, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/enzymes/{id}", r.secured(h.HandleGet, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/enzymes/{id}/yield", r.secured(h.HandleYield, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/phylogeny", r.secured(h.HandlePhylogeny, domain.RoleLabTech, httpx.LenientLimit))

	r.Mux.Handle("POST /v1/enzymes", r.secured(h.HandleCreate, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/enzymes/{id}", r.secured(h.HandleUpdate, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/enzymes/{id}", r.secured(h.HandleDelete, domain.RoleAdmin, httpx.ModerateLimit))
}

func (r *Router) registerOrganisms() {
	h := &OrganismsHandler{OrganismService: r.OrganismService}

	r.Mux.Handle("GET /v1/organisms", r.secured(h.HandleList, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/organisms/{id}", r.secured(h.HandleGet, domain.RoleLabTech, httpx.LenientLimit))

	r.Mux.Handle("POST /v1/organisms", r.secured(h.HandleCreate, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/organisms/{id}", r.secured(h.HandleUpdate, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/organisms/{id}", r.secured(h.HandleDelete, domain.RoleAdmin, httpx.ModerateLimit))

	// Uploads - moderate rate limit by user, bodies are capped by the handler
	r.Mux.Handle("POST /v1/organisms/{id}/genomic-files",
		r.secured(h.HandleUploadGenomicFile, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/organisms/{id}/genomic-files/{fileId}",
		r.secured(h.HandleDeleteGenomicFile, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/organisms/{id}/culture-images",
		r.secured(h.HandleUploadCultureImage, domain.RoleResearcher, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/organisms/{id}/culture-images/{imageId}",
		r.secured(h.HandleDeleteCultureImage, domain.RoleResearcher, httpx.ModerateLimit))
}

func (r *Router) registerFiles() {
	h := &FilesHandler{FileService: r.FileService}
	r.Mux.Handle("GET "+service.FilesPath+"{key...}", r.secured(h.ServeHTTP, domain.RoleLabTech, httpx.LenientLimit))
}

func (r *Router) registerBatches() {
	h := &BatchesHandler{BatchService: r.BatchService}

	r.Mux.Handle("GET /v1/batches", r.secured(h.HandleList, domain.RoleLabTech, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/batches/{id}", r.secured(h.HandleGet, domain.RoleLabTech, httpx.LenientLimit))

	// Lab techs record and complete batches; deletion is for researchers up
	r.Mux.Handle("POST /v1/batches", r.secured(h.HandleCreate, domain.RoleLabTech, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/batches/{id}/status", r.secured(h.HandleUpdateStatus, domain.RoleLabTech, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/batches/{id}", r.secured(h.HandleDelete, domain.RoleResearcher, httpx.ModerateLimit))
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}
	r.Mux.Handle("GET /v1/stats", r.secured(h.ServeHTTP, domain.RoleLabTech, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.blob),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
