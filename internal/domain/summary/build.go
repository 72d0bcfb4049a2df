package summary

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	ratioPlaces = 2
	// TotalLeagueID identifies the grand total row.
	TotalLeagueID = "total"
)

var hundred = decimal.NewFromInt(100)

// Build reshapes league documents into rows ordered by country then league name,
// and sums every league into Total.
func Build(docs []Document) View {
	sorted := append([]Document(nil), docs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Country != sorted[j].Country {
			return sorted[i].Country < sorted[j].Country
		}
		return sorted[i].LeagueName < sorted[j].LeagueName
	})

	total := Document{LeagueID: TotalLeagueID, LeagueName: "All leagues"}
	rows := make([]Row, 0, len(sorted))
	for _, d := range sorted {
		rows = append(rows, newRow(d))

		total.MatchesPlayed += d.MatchesPlayed
		total.HomeWins += d.HomeWins
		total.Draws += d.Draws
		total.AwayWins += d.AwayWins
		total.Goals += d.Goals
		total.BothTeamsScored += d.BothTeamsScored
		total.Over25 += d.Over25
		total.CornerKicks += d.CornerKicks
		total.YellowCards += d.YellowCards
		total.RedCards += d.RedCards
	}

	return View{Rows: rows, Total: newRow(total)}
}

func newRow(d Document) Row {
	return Row{
		LeagueID:            d.LeagueID,
		Country:             d.Country,
		LeagueName:          d.LeagueName,
		MatchesPlayed:       d.MatchesPlayed,
		GoalsPerMatch:       ratio(d.Goals, d.MatchesPlayed),
		HomeWinPct:          percent(d.HomeWins, d.MatchesPlayed),
		DrawPct:             percent(d.Draws, d.MatchesPlayed),
		AwayWinPct:          percent(d.AwayWins, d.MatchesPlayed),
		BothTeamsScoredPct:  percent(d.BothTeamsScored, d.MatchesPlayed),
		Over25Pct:           percent(d.Over25, d.MatchesPlayed),
		CornerKicksPerMatch: ratio(d.CornerKicks, d.MatchesPlayed),
		YellowCardsPerMatch: ratio(d.YellowCards, d.MatchesPlayed),
		RedCardsPerMatch:    ratio(d.RedCards, d.MatchesPlayed),
	}
}

func ratio(n, matches int) decimal.Decimal {
	if matches <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).DivRound(decimal.NewFromInt(int64(matches)), ratioPlaces)
}

func percent(n, matches int) decimal.Decimal {
	if matches <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).Mul(hundred).
		DivRound(decimal.NewFromInt(int64(matches)), ratioPlaces)
}
