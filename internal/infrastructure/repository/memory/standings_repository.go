package memory

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

type StandingsRepository struct {
	mu    sync.RWMutex
	items []standings.Record
}

func NewStandingsRepository(docs []document.Standings) *StandingsRepository {
	items := make([]standings.Record, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.ToDomain())
	}
	return &StandingsRepository{items: items}
}

func (r *StandingsRepository) FindByLeague(_ context.Context, countryPattern, leagueID string) ([]standings.Record, error) {
	re, err := regexp.Compile("(?i)" + countryPattern)
	if err != nil {
		return nil, fmt.Errorf("compile country pattern: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standings.Record, 0, 1)
	for _, rec := range r.items {
		if rec.LeagueID == leagueID && re.MatchString(rec.Country) {
			out = append(out, rec)
		}
	}

	return out, nil
}
