package mongodb

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names written by the ingestion side.
const (
	CollectionMatches       = "matches"
	CollectionStandings     = "standings"
	CollectionRefsStats     = "refsstats"
	CollectionRefsSummaries = "refssummaries"
	CollectionSummaries     = "summaries"
	CollectionTodayMatches  = "todaymatches"
	CollectionFixtures      = "fixtures"
	CollectionLatestScores  = "latestscores"
)

var listingCollections = map[listing.Kind]string{
	listing.KindTodayMatches: CollectionTodayMatches,
	listing.KindFixtures:     CollectionFixtures,
	listing.KindLatestScores: CollectionLatestScores,
}

// findAll runs a find and decodes every result into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
