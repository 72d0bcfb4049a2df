package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/mongodb"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/riskibarqy/matchstats/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

// stores groups the document repositories backing the stats services.
type stores struct {
	matches   matchstats.Repository
	standings standings.Repository
	referees  referee.Repository
	summaries summary.Repository
	listings  listing.Repository
	close     func(context.Context) error
}

func openStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	var (
		st  stores
		err error
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		st, err = openPostgresStores(cfg, logger)
	case config.StoreMongo:
		st, err = openMongoStores(ctx, cfg, logger)
	default:
		return openMemoryStores(logger)
	}
	if err != nil || !cfg.StoreBreakerEnabled {
		return st, err
	}

	return guardStores(st, resilience.Config{
		FailureThreshold: cfg.StoreBreakerFailureThreshold,
		OpenTimeout:      cfg.StoreBreakerOpenTimeout,
		HalfOpenMaxReq:   cfg.StoreBreakerHalfOpenRequests,
	}, cfg.StoreReadTimeout, logger), nil
}

// guardStores puts one breaker per collection in front of a remote store.
func guardStores(st stores, breakerCfg resilience.Config, readTimeout time.Duration, logger *logging.Logger) stores {
	newBreaker := func(name string) *resilience.Breaker {
		b := resilience.NewBreaker(name, breakerCfg)
		b.OnStateChange(func(name string, from, to resilience.State) {
			logger.Warn("store circuit breaker state changed", "store", name, "from", string(from), "to", string(to))
		})
		return b
	}

	return stores{
		matches:   guarded.NewMatchStatsRepository(st.matches, newBreaker("match_stats"), readTimeout),
		standings: guarded.NewStandingsRepository(st.standings, newBreaker("standings")),
		referees:  guarded.NewRefereeRepository(st.referees, newBreaker("referees")),
		summaries: guarded.NewSummaryRepository(st.summaries, newBreaker("summaries")),
		listings:  guarded.NewListingRepository(st.listings, newBreaker("listings")),
		close:     st.close,
	}
}

func openMemoryStores(logger *logging.Logger) (stores, error) {
	seed, err := memory.LoadSeed()
	if err != nil {
		return stores{}, fmt.Errorf("load seed documents: %w", err)
	}

	logger.Info("using in-memory document store",
		"matches", len(seed.Matches),
		"standings", len(seed.Standings),
		"referees", len(seed.RefsStats),
	)

	return stores{
		matches:   memory.NewMatchStatsRepository(seed.Matches),
		standings: memory.NewStandingsRepository(seed.Standings),
		referees:  memory.NewRefereeRepository(seed.RefsStats, seed.RefSummaries),
		summaries: memory.NewSummaryRepository(seed.Summaries),
		listings:  memory.NewListingRepository(seed.Listings),
		close:     func(context.Context) error { return nil },
	}, nil
}

func openPostgresStores(cfg config.Config, logger *logging.Logger) (stores, error) {
	dsn := postgres.DSN(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(postgres.TraceQuery),
	}
	if name := postgres.DatabaseName(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return stores{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return stores{}, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("using postgres document store", "db", postgres.DatabaseName(dsn))

	return postgresStores(db), nil
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		matches:   postgres.NewMatchStatsRepository(db),
		standings: postgres.NewStandingsRepository(db),
		referees:  postgres.NewRefereeRepository(db),
		summaries: postgres.NewSummaryRepository(db),
		listings:  postgres.NewListingRepository(db),
		close:     func(context.Context) error { return db.Close() },
	}
}

func openMongoStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName(cfg.ServiceName).
		SetConnectTimeout(cfg.MongoConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return stores{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return stores{}, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("using mongo document store", "database", cfg.MongoDatabase)

	db := client.Database(cfg.MongoDatabase)
	return stores{
		matches:   mongodb.NewMatchStatsRepository(db),
		standings: mongodb.NewStandingsRepository(db),
		referees:  mongodb.NewRefereeRepository(db),
		summaries: mongodb.NewSummaryRepository(db),
		listings:  mongodb.NewListingRepository(db),
		close:     client.Disconnect,
	}, nil
}
