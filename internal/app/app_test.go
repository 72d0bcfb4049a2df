package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/riskibarqy/matchstats/internal/platform/resilience"
)

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:       ":0",
		StoreDriver:    config.StoreMemory,
		MetricsEnabled: true,
	}

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() {
		if err := cleanup(context.Background()); err != nil {
			t.Errorf("cleanup: %v", err)
		}
	})

	paths := []string{
		"/healthz",
		"/metrics",
		"/v1/stats/england/eng-pl/match?id=A5WasEE6&select=awayTeam&stats=cornerKicks",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	_, _, err := NewHTTPServer(context.Background(), config.Config{}, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "addr") {
		t.Fatalf("expected addr error, got %v", err)
	}
}

func TestGuardStores_WrapsEveryCollection(t *testing.T) {
	st, err := openMemoryStores(logging.NewNop())
	if err != nil {
		t.Fatalf("open memory stores: %v", err)
	}

	guardedStores := guardStores(st, resilience.DefaultConfig(), time.Second, logging.NewNop())
	if _, ok := guardedStores.matches.(*guarded.MatchStatsRepository); !ok {
		t.Fatalf("expected guarded match stats repository, got %T", guardedStores.matches)
	}
	if _, ok := guardedStores.listings.(*guarded.ListingRepository); !ok {
		t.Fatalf("expected guarded listing repository, got %T", guardedStores.listings)
	}

	docs, err := guardedStores.summaries.List(context.Background())
	if err != nil || len(docs) == 0 {
		t.Fatalf("expected summaries through the guard, got %d err=%v", len(docs), err)
	}
}
