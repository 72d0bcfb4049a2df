package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchstats/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/riskibarqy/matchstats/internal/usecase"
)

// NewHTTPServer wires the configured document store into the stats services and
// returns the server together with a cleanup func releasing store connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	champs, err := memory.LoadChamps(cfg.ChampsFile)
	if err != nil {
		return nil, nil, err
	}
	champRepo := memory.NewChampRepository(champs)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	homeSvc := usecase.NewHomeService(champRepo, st.listings)
	summarySvc := usecase.NewSummaryService(champRepo, st.summaries)
	refereeSvc := usecase.NewRefereeService(champRepo, st.referees)
	leagueSvc := usecase.NewLeagueStatsService(champRepo, st.standings, st.listings)
	matchStatsSvc := usecase.NewMatchStatsService(champRepo, st.matches)

	var metrics *httpapi.Metrics
	if cfg.MetricsEnabled {
		metrics = httpapi.NewMetrics()
	}

	handler := httpapi.NewHandler(homeSvc, summarySvc, refereeSvc, leagueSvc, matchStatsSvc, metrics, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		MetricsEnabled:     metrics != nil,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, st.close, nil
}
