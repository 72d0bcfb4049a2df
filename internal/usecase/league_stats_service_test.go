package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
)

type stubStandingsRepository struct {
	mu       sync.Mutex
	records  []standings.Record
	err      error
	patterns []string
}

func (s *stubStandingsRepository) FindByLeague(_ context.Context, countryPattern, leagueID string) ([]standings.Record, error) {
	s.mu.Lock()
	s.patterns = append(s.patterns, countryPattern)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	out := make([]standings.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.LeagueID == leagueID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubListingRepository struct {
	docs map[listing.Kind][]listing.Document
	err  error
}

func (s *stubListingRepository) List(_ context.Context, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []listing.Document{}
	for _, d := range s.docs[kind] {
		if leagueID == "" || d.LeagueID == leagueID {
			out = append(out, d)
		}
	}
	return out, nil
}

func sampleListings() *stubListingRepository {
	return &stubListingRepository{docs: map[listing.Kind][]listing.Document{
		listing.KindTodayMatches: {{LeagueID: testLeagueID, Title: "Today"}},
		listing.KindFixtures:     {{LeagueID: testLeagueID, Title: "Round 12"}, {LeagueID: "kor-k1", Title: "Round 3"}},
		listing.KindLatestScores: {{LeagueID: testLeagueID, Title: "Round 11"}},
	}}
}

func standingsRecord(t *testing.T) standings.Record {
	t.Helper()

	info, err := standings.EncodeInfo(standings.Info{
		Description: "Premier League",
		Rows:        []standings.InfoRow{{Position: 1, Label: "Champions League", Color: "#1e88e5"}},
	})
	if err != nil {
		t.Fatalf("encode info: %v", err)
	}
	return standings.Record{
		Country:  "England",
		LeagueID: testLeagueID,
		Standings: standings.Standings{
			Overall: []standings.Row{{Position: 1, TeamName: "Arsenal", Points: 30}},
			Home:    []standings.Row{{Position: 1, TeamName: "Arsenal", Points: 18}},
			Away:    []standings.Row{{Position: 1, TeamName: "Liverpool", Points: 14}},
			Info:    info,
		},
	}
}

func TestLeagueStatsService_GetLeaguePage_WithStandings(t *testing.T) {
	t.Parallel()

	standingsRepo := &stubStandingsRepository{records: []standings.Record{standingsRecord(t)}}
	service := NewLeagueStatsService(&stubChampRepository{champs: testChamps()}, standingsRepo, sampleListings())

	got, err := service.GetLeaguePage(context.Background(), "england", testLeagueID)
	if err != nil {
		t.Fatalf("get league page: %v", err)
	}
	if got.Table == nil {
		t.Fatalf("expected standings table")
	}
	if got.Table.Info.Description != "Premier League" || len(got.Table.Overall) != 1 || got.Table.Away[0].TeamName != "Liverpool" {
		t.Fatalf("unexpected table: %+v", got.Table)
	}
	if len(got.TodayMatches) != 1 || len(got.Fixtures) != 1 || len(got.LatestScores) != 1 {
		t.Fatalf("listings must be filtered by league: %+v", got)
	}
	if got.Country != "england" || got.LeagueID != testLeagueID || got.Page.Level != "league" {
		t.Fatalf("unexpected page identity: %+v", got)
	}
}

func TestLeagueStatsService_GetLeaguePage_QuotesCountry(t *testing.T) {
	t.Parallel()

	standingsRepo := &stubStandingsRepository{records: []standings.Record{standingsRecord(t)}}
	service := NewLeagueStatsService(&stubChampRepository{champs: testChamps()}, standingsRepo, sampleListings())

	if _, err := service.GetLeaguePage(context.Background(), "eng.*", testLeagueID); err != nil {
		t.Fatalf("get league page: %v", err)
	}
	if len(standingsRepo.patterns) != 1 || standingsRepo.patterns[0] != `eng\.\*` {
		t.Fatalf("country must reach the store quoted, got %v", standingsRepo.patterns)
	}
}

func TestLeagueStatsService_GetLeaguePage_StandingsDisabled(t *testing.T) {
	t.Parallel()

	standingsRepo := &stubStandingsRepository{}
	service := NewLeagueStatsService(&stubChampRepository{champs: testChamps()}, standingsRepo, sampleListings())

	got, err := service.GetLeaguePage(context.Background(), "south-korea", "kor-k1")
	if err != nil {
		t.Fatalf("get league page: %v", err)
	}
	if got.Table != nil {
		t.Fatalf("expected no table, got %+v", got.Table)
	}
	if len(standingsRepo.patterns) != 0 {
		t.Fatalf("standings must not be read when disabled")
	}
	if got.TodayMatches == nil || len(got.TodayMatches) != 0 || len(got.Fixtures) != 1 {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

func TestLeagueStatsService_GetLeaguePage_Errors(t *testing.T) {
	t.Parallel()

	malformed := standingsRecord(t)
	malformed.Standings.Info = "{broken"

	tests := []struct {
		name      string
		leagueID  string
		standings *stubStandingsRepository
		listings  *stubListingRepository
		want      []error
	}{
		{
			name:      "unknown league",
			leagueID:  "nowhere",
			standings: &stubStandingsRepository{},
			listings:  sampleListings(),
			want:      []error{ErrNotFound},
		},
		{
			name:      "missing standings",
			leagueID:  testLeagueID,
			standings: &stubStandingsRepository{},
			listings:  sampleListings(),
			want:      []error{ErrStandingsNotFound, ErrNotFound},
		},
		{
			name:      "malformed info",
			leagueID:  testLeagueID,
			standings: &stubStandingsRepository{records: []standings.Record{malformed}},
			listings:  sampleListings(),
			want:      []error{ErrMalformedStandingsData, standings.ErrMalformedInfo},
		},
		{
			name:      "listing store down",
			leagueID:  "kor-k1",
			standings: &stubStandingsRepository{},
			listings:  &stubListingRepository{err: errors.New("timeout")},
			want:      []error{ErrDependencyUnavailable},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewLeagueStatsService(&stubChampRepository{champs: testChamps()}, tc.standings, tc.listings)
			_, err := service.GetLeaguePage(context.Background(), "england", tc.leagueID)
			if err == nil {
				t.Fatalf("expected error")
			}
			for _, want := range tc.want {
				if !crerr.Is(err, want) {
					t.Fatalf("expected %v in chain, got %v", want, err)
				}
			}
		})
	}
}
