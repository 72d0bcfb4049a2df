package standings

// Record is the stored standings document of one league.
type Record struct {
	Country   string
	LeagueID  string
	Standings Standings
}

// Standings holds the three tables of a league plus the serialized legend.
type Standings struct {
	Overall []Row
	Home    []Row
	Away    []Row
	// Info is a JSON document, see Info.
	Info string
}

// Row is one team line of a table. Rows are stored ordered by rank.
type Row struct {
	Position       int
	TeamID         string
	TeamName       string
	LogoURL        string
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Info is the decoded table legend.
type Info struct {
	Description string
	Rows        []InfoRow
}

// InfoRow marks a zone of the table, e.g. a qualification or relegation place.
type InfoRow struct {
	Position int
	Label    string
	Color    string
	Notes    map[string]any
}

// Table is a normalized standings record ready for rendering.
type Table struct {
	Overall []Row
	Home    []Row
	Away    []Row
	Info    Info
}
