package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/shm/internal/shm/invite"
	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/httpx"
	"github.com/aussiebroadwan/shm/pkg/slogx"

	_ "github.com/aussiebroadwan/shm/api/shm" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	StakeholderService *service.StakeholderService
	MeetingService     *service.MeetingService
	ImportService      *service.ImportService

	// MaxInviteBytes caps uploaded .ics bodies. Zero means invite.DefaultMaxBytes.
	MaxInviteBytes int64
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
	r.registerStakeholders()
	r.registerInvites()
	r.registerMeetings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Stakeholder Meeting Hub API
//	@version		0.1.0
//	@description	Records meetings, their notes and the stakeholders attending them.
//	@description	Calendar invites (.ics) can be imported to pre-fill a meeting and register its attendees.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/shm
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

func (r *Router) maxInviteBytes() int64 {
	if r.MaxInviteBytes > 0 {
		return r.MaxInviteBytes
	}
	return invite.DefaultMaxBytes
}

func (r *Router) registerStakeholders() {
	h := &StakeholdersHandler{StakeholderService: r.StakeholderService}

	r.Mux.Handle("GET /v1/stakeholders",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/stakeholders/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST is find-or-create so repeating it is harmless
	r.Mux.Handle("POST /v1/stakeholders",
		httpx.Chain(http.HandlerFunc(h.HandleFindOrCreate),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{
		ImportService: r.ImportService,
		MaxBytes:      r.maxInviteBytes(),
	}

	// Invite uploads parse untrusted documents - moderate rate limit
	r.Mux.Handle("POST /v1/invites/parse",
		httpx.Chain(http.HandlerFunc(h.HandleParse),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/import",
		httpx.Chain(http.HandlerFunc(h.HandleImport),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMeetings() {
	h := &MeetingsHandler{
		MeetingService:     r.MeetingService,
		StakeholderService: r.StakeholderService,
	}

	r.Mux.Handle("GET /v1/meetings",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/meetings/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/meetings/{id}/attendees",
		httpx.Chain(http.HandlerFunc(h.HandleAttendees),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/meetings",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/meetings/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
