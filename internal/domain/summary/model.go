package summary

import "github.com/shopspring/decimal"

// Document holds the season totals of one league.
type Document struct {
	LeagueID        string
	Country         string
	LeagueName      string
	MatchesPlayed   int
	HomeWins        int
	Draws           int
	AwayWins        int
	Goals           int
	BothTeamsScored int
	Over25          int
	CornerKicks     int
	YellowCards     int
	RedCards        int
}

// Row is a league line of the summary page. Percentages are in the 0-100 range.
type Row struct {
	LeagueID      string
	Country       string
	LeagueName    string
	MatchesPlayed int

	GoalsPerMatch       decimal.Decimal
	HomeWinPct          decimal.Decimal
	DrawPct             decimal.Decimal
	AwayWinPct          decimal.Decimal
	BothTeamsScoredPct  decimal.Decimal
	Over25Pct           decimal.Decimal
	CornerKicksPerMatch decimal.Decimal
	YellowCardsPerMatch decimal.Decimal
	RedCardsPerMatch    decimal.Decimal
}

// View is the summary page payload.
type View struct {
	Rows  []Row
	Total Row
}
