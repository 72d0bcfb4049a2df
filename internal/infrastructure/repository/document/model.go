// Package document holds the stored shape of the statistics collections.
// The same structs decode JSON seeds, Mongo BSON and Postgres JSONB columns.
package document

type MatchStats struct {
	MatchID    string         `json:"matchId" bson:"matchId"`
	MatchInfo  map[string]any `json:"matchInfo,omitempty" bson:"matchInfo,omitempty"`
	MatchStats []StatBlock    `json:"matchStats" bson:"matchStats"`
}

type StatBlock struct {
	StatsFor string      `json:"statsFor" bson:"statsFor"`
	Matches  []StatEntry `json:"matches" bson:"matches"`
}

type StatEntry struct {
	Kind  string `json:"kind" bson:"kind"`
	Value any    `json:"value" bson:"value"`
}

type Standings struct {
	Country   string      `json:"country" bson:"country"`
	LeagueID  string      `json:"id" bson:"id"`
	Standings StandingSet `json:"standings" bson:"standings"`
}

type StandingSet struct {
	Overall []StandingRow `json:"overall" bson:"overall"`
	Home    []StandingRow `json:"home" bson:"home"`
	Away    []StandingRow `json:"away" bson:"away"`
	Info    string        `json:"info" bson:"info"`
}

type StandingRow struct {
	Position       int    `json:"position" bson:"position"`
	TeamID         string `json:"teamId" bson:"teamId"`
	TeamName       string `json:"team" bson:"team"`
	LogoURL        string `json:"logo,omitempty" bson:"logo,omitempty"`
	Played         int    `json:"played" bson:"played"`
	Won            int    `json:"won" bson:"won"`
	Draw           int    `json:"draw" bson:"draw"`
	Lost           int    `json:"lost" bson:"lost"`
	GoalsFor       int    `json:"goalsFor" bson:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst" bson:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference" bson:"goalDifference"`
	Points         int    `json:"points" bson:"points"`
	Form           string `json:"form,omitempty" bson:"form,omitempty"`
}

type RefsStats struct {
	RefsStats []RefEntry `json:"refsStats" bson:"refsStats"`
}

type RefEntry struct {
	Name        string         `json:"name" bson:"name"`
	Country     string         `json:"country" bson:"country"`
	Matches     int            `json:"matches" bson:"matches"`
	YellowCards int            `json:"yellowCards" bson:"yellowCards"`
	RedCards    int            `json:"redCards" bson:"redCards"`
	Penalties   int            `json:"penalties" bson:"penalties"`
	Fouls       int            `json:"fouls" bson:"fouls"`
	Extra       map[string]any `json:"extra,omitempty" bson:"extra,omitempty"`
}

type RefSummary struct {
	Name           string  `json:"name" bson:"name"`
	Country        string  `json:"country" bson:"country"`
	League         string  `json:"league" bson:"league"`
	Matches        int     `json:"matches" bson:"matches"`
	AvgYellowCards float64 `json:"avgYellowCards" bson:"avgYellowCards"`
	AvgRedCards    float64 `json:"avgRedCards" bson:"avgRedCards"`
}

type Summary struct {
	LeagueID        string `json:"id" bson:"id"`
	Country         string `json:"country" bson:"country"`
	LeagueName      string `json:"league" bson:"league"`
	MatchesPlayed   int    `json:"matchesPlayed" bson:"matchesPlayed"`
	HomeWins        int    `json:"homeWins" bson:"homeWins"`
	Draws           int    `json:"draws" bson:"draws"`
	AwayWins        int    `json:"awayWins" bson:"awayWins"`
	Goals           int    `json:"goals" bson:"goals"`
	BothTeamsScored int    `json:"bothTeamsScored" bson:"bothTeamsScored"`
	Over25          int    `json:"over25" bson:"over25"`
	CornerKicks     int    `json:"cornerKicks" bson:"cornerKicks"`
	YellowCards     int    `json:"yellowCards" bson:"yellowCards"`
	RedCards        int    `json:"redCards" bson:"redCards"`
}

type Listing struct {
	LeagueID string           `json:"id" bson:"id"`
	Country  string           `json:"country" bson:"country"`
	Title    string           `json:"title" bson:"title"`
	Matches  []map[string]any `json:"matches" bson:"matches"`
}

type Champ struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	Name    string `json:"name"`
	// Standings is "on" when the league has a standings table.
	Standings string `json:"standings"`
	Top       bool   `json:"top"`
	FlagURL   string `json:"flagUrl"`
}
