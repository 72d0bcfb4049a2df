package mongodb

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StandingsRepository struct {
	coll *mongo.Collection
}

func NewStandingsRepository(db *mongo.Database) *StandingsRepository {
	return &StandingsRepository{coll: db.Collection(CollectionStandings)}
}

func (r *StandingsRepository) FindByLeague(ctx context.Context, countryPattern, leagueID string) ([]standings.Record, error) {
	docs, err := findAll[document.Standings](ctx, r.coll, standingsFilter(countryPattern, leagueID))
	if err != nil {
		return nil, err
	}

	out := make([]standings.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}

func standingsFilter(countryPattern, leagueID string) bson.D {
	return bson.D{
		{Key: "country", Value: primitive.Regex{Pattern: countryPattern, Options: "i"}},
		{Key: "id", Value: leagueID},
	}
}
