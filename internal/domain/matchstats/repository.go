package matchstats

import "context"

// Repository reads match statistics documents. The filter is applied by the store.
type Repository interface {
	FindByMatchID(ctx context.Context, matchID string, filter RetrievalFilter) ([]Document, error)
}
