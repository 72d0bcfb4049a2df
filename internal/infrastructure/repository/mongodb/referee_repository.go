package mongodb

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RefereeRepository struct {
	stats     *mongo.Collection
	summaries *mongo.Collection
}

func NewRefereeRepository(db *mongo.Database) *RefereeRepository {
	return &RefereeRepository{
		stats:     db.Collection(CollectionRefsStats),
		summaries: db.Collection(CollectionRefsSummaries),
	}
}

func (r *RefereeRepository) FindByName(ctx context.Context, name string) ([]referee.StatsDocument, error) {
	opts := options.Find().SetProjection(refereeProjection(name))
	docs, err := findAll[document.RefsStats](ctx, r.stats, bson.D{{Key: "refsStats.name", Value: name}}, opts)
	if err != nil {
		return nil, err
	}

	out := make([]referee.StatsDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}

func (r *RefereeRepository) ListSummaries(ctx context.Context) ([]referee.Summary, error) {
	docs, err := findAll[document.RefSummary](ctx, r.summaries, bson.D{})
	if err != nil {
		return nil, err
	}

	out := make([]referee.Summary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}

func refereeProjection(name string) bson.D {
	return bson.D{
		{Key: "_id", Value: 0},
		{Key: "refsStats", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "name", Value: name}}}}},
	}
}
