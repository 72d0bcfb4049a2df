package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// LeaguePage is the league statistics view model. Table is nil when standings are disabled.
type LeaguePage struct {
	Page         champ.PageData
	Country      string
	LeagueID     string
	Table        *standings.Table
	TodayMatches []listing.Document
	Fixtures     []listing.Document
	LatestScores []listing.Document
}

type LeagueStatsService struct {
	champRepo     champ.Repository
	standingsRepo standings.Repository
	listingRepo   listing.Repository
}

func NewLeagueStatsService(champRepo champ.Repository, standingsRepo standings.Repository, listingRepo listing.Repository) *LeagueStatsService {
	return &LeagueStatsService{
		champRepo:     champRepo,
		standingsRepo: standingsRepo,
		listingRepo:   listingRepo,
	}
}

func (s *LeagueStatsService) GetLeaguePage(ctx context.Context, country, leagueID string) (LeaguePage, error) {
	ctx, span := startServiceSpan(ctx, "LeagueStatsService", "GetLeaguePage",
		attribute.String("league.country", country),
		attribute.String("league.id", leagueID),
	)
	defer span.End()

	page, err := leaguePageData(ctx, s.champRepo, leagueID, champ.LevelLeague)
	if err != nil {
		return LeaguePage{}, err
	}
	league := *page.League

	out := LeaguePage{
		Page:     page,
		Country:  strings.TrimSpace(country),
		LeagueID: league.ID,
	}

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		out.TodayMatches, err = listDocuments(ctx, s.listingRepo, listing.KindTodayMatches, league.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		out.Fixtures, err = listDocuments(ctx, s.listingRepo, listing.KindFixtures, league.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		out.LatestScores, err = listDocuments(ctx, s.listingRepo, listing.KindLatestScores, league.ID)
		return err
	})
	if league.StandingsEnabled {
		p.Go(func(ctx context.Context) error {
			table, err := s.standingsTable(ctx, out.Country, league.ID)
			if err != nil {
				return err
			}
			out.Table = &table
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return LeaguePage{}, err
	}

	return out, nil
}

func (s *LeagueStatsService) standingsTable(ctx context.Context, country, leagueID string) (standings.Table, error) {
	records, err := s.standingsRepo.FindByLeague(ctx, standings.CountryPattern(country), leagueID)
	if err != nil {
		return standings.Table{}, storeError(err, "find standings")
	}
	if len(records) == 0 {
		return standings.Table{}, crerr.Wrapf(ErrStandingsNotFound, "country=%s league=%s", country, leagueID)
	}

	table, err := standings.Normalize(records[0])
	if err != nil {
		return standings.Table{}, crerr.Mark(err, ErrMalformedStandingsData)
	}
	return table, nil
}

func listDocuments(ctx context.Context, repo listing.Repository, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	docs, err := repo.List(ctx, kind, leagueID)
	if err != nil {
		return nil, storeError(err, "list "+string(kind))
	}
	if docs == nil {
		docs = []listing.Document{}
	}
	return docs, nil
}
