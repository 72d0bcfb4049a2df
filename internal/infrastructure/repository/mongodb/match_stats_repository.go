package mongodb

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MatchStatsRepository struct {
	coll *mongo.Collection
}

func NewMatchStatsRepository(db *mongo.Database) *MatchStatsRepository {
	return &MatchStatsRepository{coll: db.Collection(CollectionMatches)}
}

func (r *MatchStatsRepository) FindByMatchID(ctx context.Context, matchID string, filter matchstats.RetrievalFilter) ([]matchstats.Document, error) {
	opts := options.Find().SetProjection(matchStatsProjection(filter))
	docs, err := findAll[document.MatchStats](ctx, r.coll, bson.D{{Key: "matchId", Value: matchID}}, opts)
	if err != nil {
		return nil, err
	}

	out := make([]matchstats.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}

// matchStatsProjection translates the retrieval filter into an $elemMatch projection.
func matchStatsProjection(filter matchstats.RetrievalFilter) bson.D {
	projection := bson.D{
		{Key: "_id", Value: 0},
		{Key: "matchId", Value: 1},
		{Key: "matchInfo", Value: 1},
	}

	switch filter.Scope {
	case matchstats.ScopeSingleBlock:
		projection = append(projection, bson.E{
			Key:   "matchStats",
			Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "statsFor", Value: string(filter.Side)}}}},
		})
	case matchstats.ScopeNoBlocks:
		// matchStats is left out of the projection.
	default:
		projection = append(projection, bson.E{Key: "matchStats", Value: 1})
	}

	return projection
}
