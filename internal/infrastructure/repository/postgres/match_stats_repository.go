package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	qb "github.com/riskibarqy/matchstats/internal/platform/querybuilder"
)

const singleBlockColumn = `COALESCE((SELECT jsonb_agg(block) FROM jsonb_array_elements(match_stats) AS block WHERE block->>'statsFor' = ?), '[]'::jsonb) AS match_stats`

type MatchStatsRepository struct {
	db *sqlx.DB
}

func NewMatchStatsRepository(db *sqlx.DB) *MatchStatsRepository {
	return &MatchStatsRepository{db: db}
}

func (r *MatchStatsRepository) FindByMatchID(ctx context.Context, matchID string, filter matchstats.RetrievalFilter) ([]matchstats.Document, error) {
	query, args, err := matchStatsQuery(matchID, filter)
	if err != nil {
		return nil, fmt.Errorf("build find match stats query: %w", err)
	}

	var rows []matchStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find match stats: %w", err)
	}

	out := make([]matchstats.Document, 0, len(rows))
	for _, row := range rows {
		doc := document.MatchStats{MatchID: row.MatchID}
		if err := decodeJSONB(row.MatchInfo, &doc.MatchInfo, "match_info"); err != nil {
			return nil, err
		}
		if err := decodeJSONB(row.MatchStats, &doc.MatchStats, "match_stats"); err != nil {
			return nil, err
		}
		// $elemMatch semantics: only the first matching block is returned.
		if filter.Scope == matchstats.ScopeSingleBlock && len(doc.MatchStats) > 1 {
			doc.MatchStats = doc.MatchStats[:1]
		}
		out = append(out, doc.ToDomain())
	}

	return out, nil
}

func matchStatsQuery(matchID string, filter matchstats.RetrievalFilter) (string, []any, error) {
	b := qb.Select("match_id", "COALESCE(match_info, '{}'::jsonb) AS match_info")
	switch filter.Scope {
	case matchstats.ScopeSingleBlock:
		b.ColumnExpr(singleBlockColumn, string(filter.Side))
	case matchstats.ScopeNoBlocks:
		b.ColumnExpr(`'[]'::jsonb AS match_stats`)
	default:
		b.ColumnExpr("match_stats")
	}

	return b.From("match_stats").
		Where(qb.Eq("match_id", matchID), qb.IsNull("deleted_at")).
		ToSQL()
}
