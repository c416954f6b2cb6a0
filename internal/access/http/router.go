package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/barzolagym/gymos/internal/access/service"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/httpx"
	"github.com/barzolagym/gymos/pkg/slogx"

	_ "github.com/barzolagym/gymos/api/access" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	ValidatorService  *service.ValidatorService
	IntakeService     *service.IntakeService
	LedgerService     *service.LedgerService
	EnrollmentService *service.EnrollmentService
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
	r.registerAccess()
	r.registerScanEvents()
	r.registerMembers()
	r.registerPayments()
	r.registerProvisioning()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			GymOS Access Service API
//	@version		0.1.0
//	@description	Gym door access authorization: TOTP-based entry validation, membership
//	@description	payment ledger, device provisioning, and the scan intake queue that links
//	@description	door scanners to the front-desk terminal.
//
//	@contact.name	Barzola Gym
//	@contact.url	https://github.com/barzolagym/gymos
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

func (r *Router) registerAccess() {
	validateHandler := &ValidateHandler{ValidatorService: r.ValidatorService}

	// POST /access/validate - moderate rate limit by IP. The door fires this
	// once per scan; strict limits would lock members out at peak hours.
	r.Mux.Handle("POST /v1/access/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	accessLogHandler := &AccessLogHandler{Store: r.store}
	r.Mux.Handle("GET /v1/access-log",
		httpx.Chain(accessLogHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerScanEvents() {
	h := &ScanEventsHandler{IntakeService: r.IntakeService}

	// POST /scan-events - moderate limit; one request per physical scan
	r.Mux.Handle("POST /v1/scan-events",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /scan-events/poll - lenient limit; the terminal polls continuously
	r.Mux.Handle("GET /v1/scan-events/poll",
		httpx.Chain(http.HandlerFunc(h.HandlePoll),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{EnrollmentService: r.EnrollmentService}

	r.Mux.Handle("POST /v1/members",
		httpx.Chain(http.HandlerFunc(h.HandleEnroll),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/members/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{LedgerService: r.LedgerService}

	r.Mux.Handle("POST /v1/members/{id}/payments",
		httpx.Chain(http.HandlerFunc(h.HandleApply),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/members/{id}/payments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/payments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleReverse),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProvisioning() {
	// POST /devices/provision - strict rate limit by IP (PIN guessing surface)
	h := &ProvisionHandler{EnrollmentService: r.EnrollmentService}
	r.Mux.Handle("POST /v1/devices/provision",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
