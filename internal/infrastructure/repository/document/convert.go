package document

import (
	"strings"

	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
)

func (d MatchStats) ToDomain() matchstats.Document {
	out := matchstats.Document{
		MatchID:    d.MatchID,
		MatchInfo:  d.MatchInfo,
		MatchStats: make([]matchstats.StatBlock, 0, len(d.MatchStats)),
	}
	for _, b := range d.MatchStats {
		block := matchstats.StatBlock{
			StatsFor: matchstats.Side(b.StatsFor),
			Matches:  make([]matchstats.StatEntry, 0, len(b.Matches)),
		}
		for _, e := range b.Matches {
			block.Matches = append(block.Matches, matchstats.StatEntry{Kind: matchstats.StatKind(e.Kind), Value: e.Value})
		}
		out.MatchStats = append(out.MatchStats, block)
	}
	return out
}

func (d Standings) ToDomain() standings.Record {
	return standings.Record{
		Country:  d.Country,
		LeagueID: d.LeagueID,
		Standings: standings.Standings{
			Overall: standingRows(d.Standings.Overall),
			Home:    standingRows(d.Standings.Home),
			Away:    standingRows(d.Standings.Away),
			Info:    d.Standings.Info,
		},
	}
}

func standingRows(rows []StandingRow) []standings.Row {
	out := make([]standings.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, standings.Row(r))
	}
	return out
}

func (d RefsStats) ToDomain() referee.StatsDocument {
	out := referee.StatsDocument{RefsStats: make([]referee.Entry, 0, len(d.RefsStats))}
	for _, e := range d.RefsStats {
		out.RefsStats = append(out.RefsStats, referee.Entry(e))
	}
	return out
}

func (d RefSummary) ToDomain() referee.Summary {
	return referee.Summary(d)
}

func (d Summary) ToDomain() summary.Document {
	return summary.Document(d)
}

func (d Listing) ToDomain() listing.Document {
	return listing.Document(d)
}

func (d Champ) ToDomain() champ.Champ {
	return champ.Champ{
		ID:               d.ID,
		Country:          d.Country,
		Name:             d.Name,
		StandingsEnabled: strings.EqualFold(strings.TrimSpace(d.Standings), "on"),
		Top:              d.Top,
		FlagURL:          d.FlagURL,
	}
}
