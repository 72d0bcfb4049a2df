package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", handler.metrics.Handler())
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	m := handler.metrics
	mux.Handle("GET /v1/stats", m.Instrument("home", http.HandlerFunc(handler.GetHomePage)))
	mux.Handle("GET /v1/stats/summary", m.Instrument("summary", http.HandlerFunc(handler.GetSummaryPage)))
	mux.Handle("GET /v1/stats/referees", m.Instrument("referees", http.HandlerFunc(handler.GetRefereesPage)))
	mux.Handle("GET /v1/stats/{country}/{leagueID}", m.Instrument("league", http.HandlerFunc(handler.GetLeaguePage)))
	mux.Handle("GET /v1/stats/{country}/{leagueID}/match", m.Instrument("match", http.HandlerFunc(handler.GetMatchStats)))
}
