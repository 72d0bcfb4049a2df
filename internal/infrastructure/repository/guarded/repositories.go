// Package guarded decorates network-backed document repositories with a
// circuit breaker and collapses concurrent identical reads.
package guarded

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
	"github.com/riskibarqy/matchstats/internal/platform/resilience"
)

type MatchStatsRepository struct {
	next    matchstats.Repository
	breaker *resilience.Breaker
	flights *resilience.Group[[]matchstats.Document]
}

// NewMatchStatsRepository collapses identical concurrent reads. The shared read
// outlives any single caller and is bounded by readTimeout instead.
func NewMatchStatsRepository(next matchstats.Repository, breaker *resilience.Breaker, readTimeout time.Duration) *MatchStatsRepository {
	return &MatchStatsRepository{
		next:    next,
		breaker: breaker,
		flights: &resilience.Group[[]matchstats.Document]{Timeout: readTimeout},
	}
}

func (r *MatchStatsRepository) FindByMatchID(ctx context.Context, matchID string, filter matchstats.RetrievalFilter) ([]matchstats.Document, error) {
	key := matchID + "|" + strconv.Itoa(int(filter.Scope)) + "|" + string(filter.Side)
	docs, _, err := r.flights.Do(ctx, key, func(ctx context.Context) ([]matchstats.Document, error) {
		var out []matchstats.Document
		err := r.breaker.Do(ctx, func(ctx context.Context) error {
			var err error
			out, err = r.next.FindByMatchID(ctx, matchID, filter)
			return err
		})
		return out, err
	})
	return docs, err
}

type StandingsRepository struct {
	next    standings.Repository
	breaker *resilience.Breaker
}

func NewStandingsRepository(next standings.Repository, breaker *resilience.Breaker) *StandingsRepository {
	return &StandingsRepository{next: next, breaker: breaker}
}

func (r *StandingsRepository) FindByLeague(ctx context.Context, countryPattern, leagueID string) ([]standings.Record, error) {
	var out []standings.Record
	err := r.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.FindByLeague(ctx, countryPattern, leagueID)
		return err
	})
	return out, err
}

type RefereeRepository struct {
	next    referee.Repository
	breaker *resilience.Breaker
}

func NewRefereeRepository(next referee.Repository, breaker *resilience.Breaker) *RefereeRepository {
	return &RefereeRepository{next: next, breaker: breaker}
}

func (r *RefereeRepository) FindByName(ctx context.Context, name string) ([]referee.StatsDocument, error) {
	var out []referee.StatsDocument
	err := r.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.FindByName(ctx, name)
		return err
	})
	return out, err
}

func (r *RefereeRepository) ListSummaries(ctx context.Context) ([]referee.Summary, error) {
	var out []referee.Summary
	err := r.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.ListSummaries(ctx)
		return err
	})
	return out, err
}

type SummaryRepository struct {
	next    summary.Repository
	breaker *resilience.Breaker
}

func NewSummaryRepository(next summary.Repository, breaker *resilience.Breaker) *SummaryRepository {
	return &SummaryRepository{next: next, breaker: breaker}
}

func (r *SummaryRepository) List(ctx context.Context) ([]summary.Document, error) {
	var out []summary.Document
	err := r.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.List(ctx)
		return err
	})
	return out, err
}

type ListingRepository struct {
	next    listing.Repository
	breaker *resilience.Breaker
}

func NewListingRepository(next listing.Repository, breaker *resilience.Breaker) *ListingRepository {
	return &ListingRepository{next: next, breaker: breaker}
}

func (r *ListingRepository) List(ctx context.Context, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	var out []listing.Document
	err := r.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.List(ctx, kind, leagueID)
		return err
	})
	return out, err
}
