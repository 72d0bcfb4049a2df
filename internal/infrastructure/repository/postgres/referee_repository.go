package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	qb "github.com/riskibarqy/matchstats/internal/platform/querybuilder"
)

const refereeEntryColumn = `COALESCE((SELECT jsonb_agg(entry) FROM jsonb_array_elements(refs_stats) AS entry WHERE entry->>'name' = ?), '[]'::jsonb) AS refs_stats`

type RefereeRepository struct {
	db *sqlx.DB
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) FindByName(ctx context.Context, name string) ([]referee.StatsDocument, error) {
	contains, err := sonic.MarshalString([]map[string]string{{"name": name}})
	if err != nil {
		return nil, fmt.Errorf("encode referee filter: %w", err)
	}

	query, args, err := qb.Select().
		ColumnExpr(refereeEntryColumn, name).
		From("referee_stats").
		Where(qb.JSONBContains("refs_stats", contains), qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find referee query: %w", err)
	}

	var rows []refereeStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find referee: %w", err)
	}

	out := make([]referee.StatsDocument, 0, len(rows))
	for _, row := range rows {
		var doc document.RefsStats
		if err := decodeJSONB(row.RefsStats, &doc.RefsStats, "refs_stats"); err != nil {
			return nil, err
		}
		if len(doc.RefsStats) > 1 {
			doc.RefsStats = doc.RefsStats[:1]
		}
		out = append(out, doc.ToDomain())
	}

	return out, nil
}

func (r *RefereeRepository) ListSummaries(ctx context.Context) ([]referee.Summary, error) {
	query, args, err := qb.Select("name", "country", "league", "matches", "avg_yellow_cards", "avg_red_cards").
		From("referee_summaries").
		Where(qb.IsNull("deleted_at")).
		OrderBy("league", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list referee summaries query: %w", err)
	}

	var rows []refereeSummaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list referee summaries: %w", err)
	}

	out := make([]referee.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, referee.Summary(row))
	}

	return out, nil
}
