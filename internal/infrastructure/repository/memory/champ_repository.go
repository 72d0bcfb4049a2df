package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchstats/internal/domain/champ"
)

type ChampRepository struct {
	mu     sync.RWMutex
	items  map[string]champ.Champ
	orders []string
}

func NewChampRepository(champs []champ.Champ) *ChampRepository {
	items := make(map[string]champ.Champ, len(champs))
	orders := make([]string, 0, len(champs))

	for _, c := range champs {
		if _, dup := items[c.ID]; !dup {
			orders = append(orders, c.ID)
		}
		items[c.ID] = c
	}

	return &ChampRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ChampRepository) List(_ context.Context) ([]champ.Champ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]champ.Champ, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ChampRepository) GetByID(_ context.Context, leagueID string) (champ.Champ, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[leagueID]
	if !ok {
		return champ.Champ{}, false, nil
	}

	return c, true, nil
}
