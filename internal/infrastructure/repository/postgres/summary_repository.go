package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
	qb "github.com/riskibarqy/matchstats/internal/platform/querybuilder"
)

type SummaryRepository struct {
	db *sqlx.DB
}

func NewSummaryRepository(db *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) List(ctx context.Context) ([]summary.Document, error) {
	query, args, err := qb.Select(
		"league_id", "country", "league_name", "matches_played", "home_wins", "draws", "away_wins",
		"goals", "both_teams_scored", "over_25", "corner_kicks", "yellow_cards", "red_cards",
	).
		From("league_summaries").
		Where(qb.IsNull("deleted_at")).
		OrderBy("country", "league_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league summaries query: %w", err)
	}

	var rows []leagueSummaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league summaries: %w", err)
	}

	out := make([]summary.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, summary.Document(row))
	}

	return out, nil
}
