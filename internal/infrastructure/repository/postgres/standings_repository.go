package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	qb "github.com/riskibarqy/matchstats/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) FindByLeague(ctx context.Context, countryPattern, leagueID string) ([]standings.Record, error) {
	query, args, err := qb.Select("league_id", "country", "overall", "home", "away", "info").
		From("standings").
		Where(
			qb.Eq("league_id", leagueID),
			qb.MatchesFold("country", countryPattern),
			qb.IsNull("deleted_at"),
		).
		OrderBy("updated_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find standings query: %w", err)
	}

	var rows []standingsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find standings: %w", err)
	}

	out := make([]standings.Record, 0, len(rows))
	for _, row := range rows {
		doc := document.Standings{
			Country:  row.Country,
			LeagueID: row.LeagueID,
		}
		doc.Standings.Info = row.Info.String
		if err := decodeJSONB(row.Overall, &doc.Standings.Overall, "overall"); err != nil {
			return nil, err
		}
		if err := decodeJSONB(row.Home, &doc.Standings.Home, "home"); err != nil {
			return nil, err
		}
		if err := decodeJSONB(row.Away, &doc.Standings.Away, "away"); err != nil {
			return nil, err
		}
		out = append(out, doc.ToDomain())
	}

	return out, nil
}
