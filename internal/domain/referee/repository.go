package referee

import "context"

type Repository interface {
	// FindByName returns documents narrowed to the entries whose name equals name.
	FindByName(ctx context.Context, name string) ([]StatsDocument, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
}
