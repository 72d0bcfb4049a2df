package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

type MatchStatsRepository struct {
	mu    sync.RWMutex
	items map[string]matchstats.Document
}

func NewMatchStatsRepository(docs []document.MatchStats) *MatchStatsRepository {
	items := make(map[string]matchstats.Document, len(docs))
	for _, d := range docs {
		items[d.MatchID] = d.ToDomain()
	}
	return &MatchStatsRepository{items: items}
}

func (r *MatchStatsRepository) FindByMatchID(_ context.Context, matchID string, filter matchstats.RetrievalFilter) ([]matchstats.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.items[matchID]
	if !ok {
		return []matchstats.Document{}, nil
	}

	return []matchstats.Document{filter.Apply(doc)}, nil
}
