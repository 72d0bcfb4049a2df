package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/matchstats/internal/domain/summary"
	summarymock "github.com/riskibarqy/matchstats/internal/mocks/domain/summary"
	"github.com/stretchr/testify/mock"
)

func TestSummaryService_GetSummaryPageUsingMockery(t *testing.T) {
	t.Parallel()

	summaryRepo := summarymock.NewRepository(t)
	service := NewSummaryService(&stubChampRepository{champs: testChamps()}, summaryRepo)

	summaryRepo.
		On("List", mock.Anything).
		Return([]summary.Document{
			{LeagueID: "esp-laliga", Country: "Spain", LeagueName: "LaLiga", MatchesPlayed: 4, Goals: 10},
			{LeagueID: testLeagueID, Country: "England", LeagueName: "Premier League", MatchesPlayed: 6, Goals: 18},
		}, nil).
		Once()

	got, err := service.GetSummaryPage(context.Background())
	if err != nil {
		t.Fatalf("get summary page: %v", err)
	}
	if len(got.Summary.Rows) != 2 || got.Summary.Rows[0].LeagueID != testLeagueID {
		t.Fatalf("unexpected rows: %+v", got.Summary.Rows)
	}
	if got.Summary.Total.GoalsPerMatch.String() != "2.8" {
		t.Fatalf("unexpected total: %s", got.Summary.Total.GoalsPerMatch)
	}
	if got.Page.Level != "summary" || got.Page.Top != nil {
		t.Fatalf("unexpected page data: %+v", got.Page)
	}
}
