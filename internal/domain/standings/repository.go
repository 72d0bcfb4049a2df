package standings

import "context"

// Repository reads standings records. countryPattern is a regular expression matched
// case-insensitively against the stored country, see CountryPattern.
type Repository interface {
	FindByLeague(ctx context.Context, countryPattern, leagueID string) ([]Record, error)
}
