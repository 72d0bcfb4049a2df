package summary

import "testing"

func TestBuild_OrdersRowsAndComputesRatios(t *testing.T) {
	t.Parallel()

	view := Build([]Document{
		{LeagueID: "esp-laliga", Country: "Spain", LeagueName: "LaLiga", MatchesPlayed: 10, HomeWins: 5, Draws: 3, AwayWins: 2, Goals: 27, YellowCards: 48},
		{LeagueID: "eng-champ", Country: "England", LeagueName: "Championship", MatchesPlayed: 3, HomeWins: 1, Draws: 1, AwayWins: 1, Goals: 7, Over25: 2},
		{LeagueID: "eng-pl", Country: "England", LeagueName: "Premier League", MatchesPlayed: 0},
	})

	wantOrder := []string{"eng-champ", "eng-pl", "esp-laliga"}
	if len(view.Rows) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(view.Rows))
	}
	for i, id := range wantOrder {
		if view.Rows[i].LeagueID != id {
			t.Fatalf("row %d: want %s, got %s", i, id, view.Rows[i].LeagueID)
		}
	}

	champ := view.Rows[0]
	if got := champ.GoalsPerMatch.String(); got != "2.33" {
		t.Fatalf("goals per match: %s", got)
	}
	if got := champ.Over25Pct.String(); got != "66.67" {
		t.Fatalf("over 2.5 pct: %s", got)
	}

	laliga := view.Rows[2]
	if got := laliga.HomeWinPct.String(); got != "50" {
		t.Fatalf("home win pct: %s", got)
	}
	if got := laliga.YellowCardsPerMatch.String(); got != "4.8" {
		t.Fatalf("yellow cards per match: %s", got)
	}

	if view.Total.LeagueID != TotalLeagueID || view.Total.MatchesPlayed != 13 {
		t.Fatalf("unexpected total row: %+v", view.Total)
	}
	if got := view.Total.GoalsPerMatch.String(); got != "2.62" {
		t.Fatalf("total goals per match: %s", got)
	}
}

func TestBuild_ZeroMatchesYieldZeroRatios(t *testing.T) {
	t.Parallel()

	view := Build([]Document{{LeagueID: "new", Country: "Wales", LeagueName: "Cymru Premier", Goals: 3}})

	row := view.Rows[0]
	for name, v := range map[string]interface{ IsZero() bool }{
		"goals":  row.GoalsPerMatch,
		"home":   row.HomeWinPct,
		"draw":   row.DrawPct,
		"btts":   row.BothTeamsScoredPct,
		"yellow": row.YellowCardsPerMatch,
	} {
		if !v.IsZero() {
			t.Fatalf("%s: expected zero ratio", name)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	view := Build(nil)
	if view.Rows == nil || len(view.Rows) != 0 {
		t.Fatalf("expected empty, non-nil rows")
	}
	if !view.Total.GoalsPerMatch.IsZero() {
		t.Fatalf("expected zero total")
	}
}
