package listing

import "context"

// Kind names a per-league match listing.
type Kind string

const (
	KindTodayMatches Kind = "today_matches"
	KindFixtures     Kind = "fixtures"
	KindLatestScores Kind = "latest_scores"
)

// Document is an externally produced listing for one league. Matches are passed through as stored.
type Document struct {
	LeagueID string
	Country  string
	Title    string
	Matches  []map[string]any
}

type Repository interface {
	// List returns documents of kind. An empty leagueID lists every league.
	List(ctx context.Context, kind Kind, leagueID string) ([]Document, error)
}
