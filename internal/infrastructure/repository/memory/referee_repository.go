package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

type RefereeRepository struct {
	mu        sync.RWMutex
	docs      []referee.StatsDocument
	summaries []referee.Summary
}

func NewRefereeRepository(docs []document.RefsStats, summaries []document.RefSummary) *RefereeRepository {
	repo := &RefereeRepository{
		docs:      make([]referee.StatsDocument, 0, len(docs)),
		summaries: make([]referee.Summary, 0, len(summaries)),
	}
	for _, d := range docs {
		repo.docs = append(repo.docs, d.ToDomain())
	}
	for _, s := range summaries {
		repo.summaries = append(repo.summaries, s.ToDomain())
	}
	return repo
}

// FindByName narrows every document to its first entry named name, like an $elemMatch projection.
func (r *RefereeRepository) FindByName(_ context.Context, name string) ([]referee.StatsDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]referee.StatsDocument, 0, len(r.docs))
	for _, d := range r.docs {
		narrowed := referee.StatsDocument{RefsStats: []referee.Entry{}}
		for _, e := range d.RefsStats {
			if e.Name == name {
				narrowed.RefsStats = append(narrowed.RefsStats, e)
				break
			}
		}
		out = append(out, narrowed)
	}

	return out, nil
}

func (r *RefereeRepository) ListSummaries(_ context.Context) ([]referee.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]referee.Summary(nil), r.summaries...), nil
}
