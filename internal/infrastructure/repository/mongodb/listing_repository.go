package mongodb

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ListingRepository struct {
	db *mongo.Database
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) List(ctx context.Context, kind listing.Kind, leagueID string) ([]listing.Document, error) {
	name, ok := listingCollections[kind]
	if !ok {
		return nil, fmt.Errorf("unknown listing kind %q", kind)
	}

	filter := bson.D{}
	if leagueID != "" {
		filter = append(filter, bson.E{Key: "id", Value: leagueID})
	}

	docs, err := findAll[document.Listing](ctx, r.db.Collection(name), filter)
	if err != nil {
		return nil, err
	}

	out := make([]listing.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}
