package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	champmock "github.com/riskibarqy/matchstats/internal/mocks/domain/champ"
	matchstatsmock "github.com/riskibarqy/matchstats/internal/mocks/domain/matchstats"
	"github.com/stretchr/testify/mock"
)

const testLeagueID = "eng-pl"

func testChamps() []champ.Champ {
	return []champ.Champ{
		{ID: testLeagueID, Country: "england", Name: "Premier League", StandingsEnabled: true, Top: true},
		{ID: "kor-k1", Country: "south-korea", Name: "K League 1"},
	}
}

type stubChampRepository struct {
	champs []champ.Champ
	err    error
}

func (s *stubChampRepository) GetByID(_ context.Context, leagueID string) (champ.Champ, bool, error) {
	if s.err != nil {
		return champ.Champ{}, false, s.err
	}
	for _, c := range s.champs {
		if c.ID == leagueID {
			return c, true, nil
		}
	}
	return champ.Champ{}, false, nil
}

func (s *stubChampRepository) List(context.Context) ([]champ.Champ, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.champs, nil
}

type stubMatchStatsRepository struct {
	docs  map[string]matchstats.Document
	calls []matchstats.RetrievalFilter
}

func (s *stubMatchStatsRepository) FindByMatchID(_ context.Context, matchID string, filter matchstats.RetrievalFilter) ([]matchstats.Document, error) {
	s.calls = append(s.calls, filter)
	doc, ok := s.docs[matchID]
	if !ok {
		return []matchstats.Document{}, nil
	}
	return []matchstats.Document{filter.Apply(doc)}, nil
}

func a5WasEE6() matchstats.Document {
	return matchstats.Document{
		MatchID:   "A5WasEE6",
		MatchInfo: map[string]any{"homeTeam": "Arsenal", "awayTeam": "Liverpool"},
		MatchStats: []matchstats.StatBlock{
			{StatsFor: matchstats.SideHomeTeam, Matches: []matchstats.StatEntry{{Kind: matchstats.StatCornerKicks, Value: 5}}},
			{StatsFor: matchstats.SideAwayTeam, Matches: []matchstats.StatEntry{
				{Kind: matchstats.StatCornerKicks, Value: 7},
				{Kind: matchstats.StatYellowCards, Value: 2},
			}},
		},
	}
}

func TestMatchStatsService_GetMatchStats_SideAndStatUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	champRepo := champmock.NewRepository(t)
	statsRepo := matchstatsmock.NewRepository(t)
	service := NewMatchStatsService(champRepo, statsRepo)

	away := matchstats.SideAwayTeam
	narrowed := matchstats.BuildFilter(&away).Apply(a5WasEE6())

	champRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), testLeagueID).
		Return(testChamps()[0], true, nil).
		Once()
	champRepo.
		On("List", mock.Anything).
		Return(testChamps(), nil).
		Once()
	statsRepo.
		On("FindByMatchID", mock.Anything, "A5WasEE6", matchstats.RetrievalFilter{Scope: matchstats.ScopeSingleBlock, Side: away}).
		Return([]matchstats.Document{narrowed}, nil).
		Once()

	got, err := service.GetMatchStats(ctx, MatchStatsQuery{
		Country:   "england",
		LeagueID:  testLeagueID,
		MatchID:   " A5WasEE6 ",
		Selection: matchstats.SideAndStat(away, matchstats.StatCornerKicks),
	})
	if err != nil {
		t.Fatalf("get match stats: %v", err)
	}
	if got.MatchID != "A5WasEE6" || got.MatchInfo["awayTeam"] != "Liverpool" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.View.IsSummary || len(got.View.Blocks) != 1 {
		t.Fatalf("unexpected view: %+v", got.View)
	}
	block := got.View.Blocks[0]
	if block.StatsFor != away || len(block.Matches) != 1 || block.Matches[0].Value != 7 {
		t.Fatalf("unexpected block: %+v", block)
	}
	if got.Stat == nil || *got.Stat != matchstats.StatCornerKicks {
		t.Fatalf("requested stat kind not echoed: %v", got.Stat)
	}
	if got.Page.Level != champ.LevelMatch || !got.Page.Menu[0].Active {
		t.Fatalf("unexpected page data: %+v", got.Page)
	}
}

func TestMatchStatsService_GetMatchStats_NoSelectorsIsSummary(t *testing.T) {
	t.Parallel()

	statsRepo := &stubMatchStatsRepository{docs: map[string]matchstats.Document{"A5WasEE6": a5WasEE6()}}
	service := NewMatchStatsService(&stubChampRepository{champs: testChamps()}, statsRepo)

	got, err := service.GetMatchStats(context.Background(), MatchStatsQuery{
		LeagueID:  testLeagueID,
		MatchID:   "A5WasEE6",
		Selection: matchstats.NewSelection(nil, nil),
	})
	if err != nil {
		t.Fatalf("get match stats: %v", err)
	}
	if !got.View.IsSummary || len(got.View.Blocks) != 2 {
		t.Fatalf("expected full summary, got %+v", got.View)
	}
	if got.Stat != nil {
		t.Fatalf("no stat kind was requested")
	}
	if len(statsRepo.calls) != 1 || statsRepo.calls[0].Scope != matchstats.ScopeFullDocument {
		t.Fatalf("expected one full document read, got %+v", statsRepo.calls)
	}
}

func TestMatchStatsService_GetMatchStats_UnknownMatchForEveryMode(t *testing.T) {
	t.Parallel()

	service := NewMatchStatsService(
		&stubChampRepository{champs: testChamps()},
		&stubMatchStatsRepository{docs: map[string]matchstats.Document{"A5WasEE6": a5WasEE6()}},
	)

	selections := []matchstats.Selection{
		matchstats.FullSummary(),
		matchstats.StatOnly(matchstats.StatGoals),
		matchstats.SideOnly(matchstats.SideH2H),
		matchstats.SideAndStat(matchstats.SideHomeTeam, matchstats.StatFouls),
	}
	for _, sel := range selections {
		_, err := service.GetMatchStats(context.Background(), MatchStatsQuery{
			LeagueID:  testLeagueID,
			MatchID:   "missing-1",
			Selection: sel,
		})
		if !crerr.Is(err, ErrNotFound) {
			t.Fatalf("mode=%s: expected ErrNotFound, got %v", sel.Mode(), err)
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) || notFound.MatchID != "missing-1" {
			t.Fatalf("mode=%s: expected match id in error, got %v", sel.Mode(), err)
		}
		if err.Error() != "statistics not found for match with ID: missing-1" {
			t.Fatalf("mode=%s: unexpected message %q", sel.Mode(), err.Error())
		}
	}
}

func TestMatchStatsService_GetMatchStats_UnknownLeagueUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	champRepo := champmock.NewRepository(t)
	statsRepo := matchstatsmock.NewRepository(t)
	service := NewMatchStatsService(champRepo, statsRepo)

	champRepo.
		On("GetByID", mock.Anything, "nowhere").
		Return(champ.Champ{}, false, nil).
		Once()

	_, err := service.GetMatchStats(ctx, MatchStatsQuery{LeagueID: "nowhere", MatchID: "A5WasEE6"})
	if !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	statsRepo.AssertNotCalled(t, "FindByMatchID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchStatsService_GetMatchStats_Validation(t *testing.T) {
	t.Parallel()

	service := NewMatchStatsService(&stubChampRepository{champs: testChamps()}, &stubMatchStatsRepository{})

	if _, err := service.GetMatchStats(context.Background(), MatchStatsQuery{LeagueID: testLeagueID, MatchID: "  "}); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank match id, got %v", err)
	}
	if _, err := service.GetMatchStats(context.Background(), MatchStatsQuery{MatchID: "A5WasEE6"}); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank league id, got %v", err)
	}
}

func TestMatchStatsService_GetMatchStats_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	champRepo := champmock.NewRepository(t)
	statsRepo := matchstatsmock.NewRepository(t)
	service := NewMatchStatsService(champRepo, statsRepo)

	champRepo.On("GetByID", mock.Anything, testLeagueID).Return(testChamps()[0], true, nil).Once()
	champRepo.On("List", mock.Anything).Return(testChamps(), nil).Once()
	statsRepo.
		On("FindByMatchID", mock.Anything, "A5WasEE6", mock.AnythingOfType("matchstats.RetrievalFilter")).
		Return(nil, errors.New("connection refused")).
		Once()

	_, err := service.GetMatchStats(context.Background(), MatchStatsQuery{LeagueID: testLeagueID, MatchID: "A5WasEE6"})
	if !crerr.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if crerr.Is(err, ErrNotFound) {
		t.Fatalf("store failure must not look like a missing match")
	}
}
