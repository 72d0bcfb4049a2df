package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	qb "github.com/riskibarqy/matchstats/internal/platform/querybuilder"
)

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) List(ctx context.Context, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	conditions := []qb.Condition{qb.Eq("kind", string(kind)), qb.IsNull("deleted_at")}
	if leagueID != "" {
		conditions = append(conditions, qb.Eq("league_id", leagueID))
	}

	query, args, err := qb.Select("league_id", "country", "title", "matches").
		From("listings").
		Where(conditions...).
		OrderBy("position", "league_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", kind, err)
	}

	var rows []listingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	out := make([]listing.Document, 0, len(rows))
	for _, row := range rows {
		doc := document.Listing{
			LeagueID: row.LeagueID,
			Country:  row.Country,
			Title:    row.Title,
		}
		if err := decodeJSONB(row.Matches, &doc.Matches, "matches"); err != nil {
			return nil, err
		}
		out = append(out, doc.ToDomain())
	}

	return out, nil
}
