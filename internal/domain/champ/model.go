package champ

import "context"

// Champ is a configured league.
type Champ struct {
	ID      string
	Country string
	Name    string
	// StandingsEnabled gates standings lookups for the league page.
	StandingsEnabled bool
	// Top leagues are featured on the home and referees pages.
	Top     bool
	FlagURL string
}

type Repository interface {
	GetByID(ctx context.Context, leagueID string) (Champ, bool, error)
	List(ctx context.Context) ([]Champ, error)
}
