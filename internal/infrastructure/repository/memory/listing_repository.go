package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

type ListingRepository struct {
	mu     sync.RWMutex
	byKind map[listing.Kind][]listing.Document
}

func NewListingRepository(docs map[listing.Kind][]document.Listing) *ListingRepository {
	byKind := make(map[listing.Kind][]listing.Document, len(docs))
	for kind, items := range docs {
		converted := make([]listing.Document, 0, len(items))
		for _, d := range items {
			converted = append(converted, d.ToDomain())
		}
		byKind[kind] = converted
	}
	return &ListingRepository{byKind: byKind}
}

func (r *ListingRepository) List(_ context.Context, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listing.Document, 0, len(r.byKind[kind]))
	for _, d := range r.byKind[kind] {
		if leagueID == "" || d.LeagueID == leagueID {
			out = append(out, d)
		}
	}

	return out, nil
}
