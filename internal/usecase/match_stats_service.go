package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"go.opentelemetry.io/otel/attribute"
)

// MatchStatsQuery identifies a match page. Selection is built once at the boundary.
type MatchStatsQuery struct {
	Country   string
	LeagueID  string
	MatchID   string
	Selection matchstats.Selection
}

// MatchStatsPage is the match statistics view model.
type MatchStatsPage struct {
	Page      champ.PageData
	Country   string
	LeagueID  string
	MatchID   string
	MatchInfo map[string]any
	View      matchstats.ProjectedView
	// Stat echoes the requested stat kind, if any.
	Stat *matchstats.StatKind
}

type MatchStatsService struct {
	champRepo champ.Repository
	statsRepo matchstats.Repository
}

func NewMatchStatsService(champRepo champ.Repository, statsRepo matchstats.Repository) *MatchStatsService {
	return &MatchStatsService{
		champRepo: champRepo,
		statsRepo: statsRepo,
	}
}

func (s *MatchStatsService) GetMatchStats(ctx context.Context, query MatchStatsQuery) (MatchStatsPage, error) {
	ctx, span := startServiceSpan(ctx, "MatchStatsService", "GetMatchStats",
		attribute.String("league.id", query.LeagueID),
	)
	defer span.End()

	matchID := strings.TrimSpace(query.MatchID)
	if matchID == "" {
		return MatchStatsPage{}, crerr.Wrap(ErrInvalidInput, "match id is required")
	}
	span.SetAttributes(
		attribute.String("match.id", matchID),
		attribute.String("projection.mode", string(query.Selection.Mode())),
	)

	// An unknown league is reported before the match is looked up.
	page, err := leaguePageData(ctx, s.champRepo, query.LeagueID, champ.LevelMatch)
	if err != nil {
		return MatchStatsPage{}, err
	}

	docs, err := s.statsRepo.FindByMatchID(ctx, matchID, query.Selection.Filter())
	if err != nil {
		return MatchStatsPage{}, storeError(err, "find match stats")
	}
	if len(docs) == 0 {
		return MatchStatsPage{}, newMatchNotFound(matchID)
	}

	doc := docs[0]
	out := MatchStatsPage{
		Page:      page,
		Country:   strings.TrimSpace(query.Country),
		LeagueID:  page.League.ID,
		MatchID:   doc.MatchID,
		MatchInfo: doc.MatchInfo,
		View:      matchstats.Project(doc, query.Selection),
	}
	if kind, ok := query.Selection.StatKind(); ok {
		out.Stat = &kind
	}

	return out, nil
}

// leaguePageData resolves leagueID against the catalog and builds the page navigation.
func leaguePageData(ctx context.Context, repo champ.Repository, leagueID, level string) (champ.PageData, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return champ.PageData{}, crerr.Wrap(ErrInvalidInput, "league id is required")
	}

	league, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return champ.PageData{}, storeError(err, "get league")
	}
	if !exists {
		return champ.PageData{}, crerr.Wrapf(ErrNotFound, "league=%s", leagueID)
	}

	champs, err := repo.List(ctx)
	if err != nil {
		return champ.PageData{}, storeError(err, "list leagues")
	}

	return champ.PageData{
		Level:  level,
		Menu:   champ.Menu(champs, leagueID),
		League: &league,
	}, nil
}
