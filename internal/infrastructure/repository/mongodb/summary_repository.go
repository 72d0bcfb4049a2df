package mongodb

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/summary"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SummaryRepository struct {
	coll *mongo.Collection
}

func NewSummaryRepository(db *mongo.Database) *SummaryRepository {
	return &SummaryRepository{coll: db.Collection(CollectionSummaries)}
}

func (r *SummaryRepository) List(ctx context.Context) ([]summary.Document, error) {
	docs, err := findAll[document.Summary](ctx, r.coll, bson.D{})
	if err != nil {
		return nil, err
	}

	out := make([]summary.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}
