package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/summary"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

type SummaryRepository struct {
	mu    sync.RWMutex
	items []summary.Document
}

func NewSummaryRepository(docs []document.Summary) *SummaryRepository {
	items := make([]summary.Document, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.ToDomain())
	}
	return &SummaryRepository{items: items}
}

func (r *SummaryRepository) List(_ context.Context) ([]summary.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]summary.Document(nil), r.items...), nil
}
