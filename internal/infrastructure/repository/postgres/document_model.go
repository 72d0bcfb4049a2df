package postgres

import (
	"database/sql"

	"github.com/jmoiron/sqlx/types"
)

type matchStatsTableModel struct {
	MatchID    string         `db:"match_id"`
	MatchInfo  types.JSONText `db:"match_info"`
	MatchStats types.JSONText `db:"match_stats"`
}

type standingsTableModel struct {
	LeagueID string         `db:"league_id"`
	Country  string         `db:"country"`
	Overall  types.JSONText `db:"overall"`
	Home     types.JSONText `db:"home"`
	Away     types.JSONText `db:"away"`
	Info     sql.NullString `db:"info"`
}

type refereeStatsTableModel struct {
	RefsStats types.JSONText `db:"refs_stats"`
}

type refereeSummaryTableModel struct {
	Name           string  `db:"name"`
	Country        string  `db:"country"`
	League         string  `db:"league"`
	Matches        int     `db:"matches"`
	AvgYellowCards float64 `db:"avg_yellow_cards"`
	AvgRedCards    float64 `db:"avg_red_cards"`
}

type leagueSummaryTableModel struct {
	LeagueID        string `db:"league_id"`
	Country         string `db:"country"`
	LeagueName      string `db:"league_name"`
	MatchesPlayed   int    `db:"matches_played"`
	HomeWins        int    `db:"home_wins"`
	Draws           int    `db:"draws"`
	AwayWins        int    `db:"away_wins"`
	Goals           int    `db:"goals"`
	BothTeamsScored int    `db:"both_teams_scored"`
	Over25          int    `db:"over_25"`
	CornerKicks     int    `db:"corner_kicks"`
	YellowCards     int    `db:"yellow_cards"`
	RedCards        int    `db:"red_cards"`
}

type listingTableModel struct {
	LeagueID string         `db:"league_id"`
	Country  string         `db:"country"`
	Title    string         `db:"title"`
	Matches  types.JSONText `db:"matches"`
}
