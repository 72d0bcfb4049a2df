package mongodb

import (
	"testing"

	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func projectionKeys(p bson.D) map[string]any {
	out := make(map[string]any, len(p))
	for _, e := range p {
		out[e.Key] = e.Value
	}
	return out
}

func TestMatchStatsProjection(t *testing.T) {
	t.Parallel()

	full := projectionKeys(matchStatsProjection(matchstats.BuildFilter(nil)))
	if full["matchStats"] != 1 || full["matchId"] != 1 || full["_id"] != 0 {
		t.Fatalf("unexpected full projection: %+v", full)
	}

	home := matchstats.SideHomeTeam
	single := projectionKeys(matchStatsProjection(matchstats.BuildFilter(&home)))
	elem, ok := single["matchStats"].(bson.D)
	if !ok || len(elem) != 1 || elem[0].Key != "$elemMatch" {
		t.Fatalf("expected $elemMatch projection, got %+v", single["matchStats"])
	}
	cond := elem[0].Value.(bson.D)
	if cond[0].Key != "statsFor" || cond[0].Value != "homeTeam" {
		t.Fatalf("unexpected element match: %+v", cond)
	}
	if single["matchInfo"] != 1 {
		t.Fatalf("identity fields must be kept: %+v", single)
	}

	bogus := matchstats.Side("Home")
	none := projectionKeys(matchStatsProjection(matchstats.BuildFilter(&bogus)))
	if _, ok := none["matchStats"]; ok {
		t.Fatalf("unknown side must drop every block: %+v", none)
	}
	if none["matchId"] != 1 {
		t.Fatalf("identity fields must be kept: %+v", none)
	}
}

func TestStandingsFilter_CaseInsensitiveRegex(t *testing.T) {
	t.Parallel()

	f := projectionKeys(standingsFilter(`eng\.`, "eng-pl"))
	re, ok := f["country"].(primitive.Regex)
	if !ok || re.Pattern != `eng\.` || re.Options != "i" {
		t.Fatalf("unexpected country filter: %+v", f["country"])
	}
	if f["id"] != "eng-pl" {
		t.Fatalf("unexpected league filter: %+v", f["id"])
	}
}

func TestRefereeProjection(t *testing.T) {
	t.Parallel()

	p := projectionKeys(refereeProjection("Michael Oliver"))
	elem := p["refsStats"].(bson.D)
	cond := elem[0].Value.(bson.D)
	if elem[0].Key != "$elemMatch" || cond[0].Key != "name" || cond[0].Value != "Michael Oliver" {
		t.Fatalf("unexpected referee projection: %+v", p)
	}
}
