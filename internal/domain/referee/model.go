package referee

import "github.com/shopspring/decimal"

// StatsDocument is a stored collection of referee statistics.
type StatsDocument struct {
	RefsStats []Entry
}

// Entry is the record of one referee. Name is the natural key.
type Entry struct {
	Name        string
	Country     string
	Matches     int
	YellowCards int
	RedCards    int
	Penalties   int
	Fouls       int
	Extra       map[string]any
}

// Summary is one row of the referees listing.
type Summary struct {
	Name           string
	Country        string
	League         string
	Matches        int
	AvgYellowCards float64
	AvgRedCards    float64
}

// Info is the view of a single referee.
type Info struct {
	Name        string
	Country     string
	Matches     int
	YellowCards int
	RedCards    int
	Penalties   int
	Fouls       int

	YellowCardsPerMatch decimal.Decimal
	RedCardsPerMatch    decimal.Decimal
	PenaltiesPerMatch   decimal.Decimal
	FoulsPerMatch       decimal.Decimal

	Extra map[string]any
}
