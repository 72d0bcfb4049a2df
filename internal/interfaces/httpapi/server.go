package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

// RouterConfig carries the transport settings of the router.
type RouterConfig struct {
	SwaggerEnabled     bool
	MetricsEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg)
	registerStatsRoutes(mux, handler)

	var root http.Handler = recoverPanic(logger, mux)
	root = RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, root)
	root = CORS(cfg.CORSAllowedOrigins, root)
	root = RequestLogging(logger, root)
	root = RequestID(root)
	return RequestTracing(root)
}

// recoverPanic turns a handler panic into a 500 envelope. http.ErrAbortHandler is
// re-raised so net/http can drop the connection.
func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", requestIDFromContext(r.Context()),
			)
			writeInternalError(r.Context(), w)
		}()
		next.ServeHTTP(w, r)
	})
}
