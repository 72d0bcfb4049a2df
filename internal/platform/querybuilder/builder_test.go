package querybuilder

import (
	"reflect"
	"testing"
)

func TestToSQL(t *testing.T) {
	tests := []struct {
		name      string
		build     *SelectBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "filters ordering and limit",
			build: Select("league_id", "title").
				From("listings").
				Where(Eq("kind", "today"), IsNull("deleted_at")).
				OrderBy("position", "league_id").
				Limit(10),
			wantQuery: "SELECT league_id, title FROM listings WHERE kind = $1 AND deleted_at IS NULL ORDER BY position, league_id LIMIT 10",
			wantArgs:  []any{"today"},
		},
		{
			name: "column args are numbered before where args",
			build: Select("match_id").
				ColumnExpr("(SELECT jsonb_agg(b) FROM jsonb_array_elements(match_stats) AS b WHERE b->>'statsFor' = ?) AS match_stats", "awayTeam").
				From("match_stats").
				Where(Eq("match_id", "A5WasEE6")),
			wantQuery: "SELECT match_id, (SELECT jsonb_agg(b) FROM jsonb_array_elements(match_stats) AS b WHERE b->>'statsFor' = $1) AS match_stats FROM match_stats WHERE match_id = $2",
			wantArgs:  []any{"awayTeam", "A5WasEE6"},
		},
		{
			name: "document predicates",
			build: Select("*").
				From("standings").
				Where(
					MatchesFold("country", `eng\.`),
					JSONBContains("refs_stats", `[{"name":"Michael Oliver"}]`),
					In("league_id", []any{"eng-pl", "esp-laliga"}),
				),
			wantQuery: "SELECT * FROM standings WHERE country ~* $1 AND refs_stats @> $2::jsonb AND league_id IN ($3, $4)",
			wantArgs:  []any{`eng\.`, `[{"name":"Michael Oliver"}]`, "eng-pl", "esp-laliga"},
		},
		{
			name:      "empty in list matches nothing",
			build:     Select("id").From("t").Where(In("id", nil)),
			wantQuery: "SELECT id FROM t WHERE 1=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build.ToSQL()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tt.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tt.wantQuery, query)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Fatalf("unexpected args: want %+v, got %+v", tt.wantArgs, args)
			}
		})
	}
}

func TestToSQL_Errors(t *testing.T) {
	builders := map[string]*SelectBuilder{
		"no columns":            Select().From("t"),
		"no table":              Select("id"),
		"missing column arg":    Select().ColumnExpr("a = ? AND b = ?", 1).From("t"),
		"extra column argument": Select().ColumnExpr("a", 1).From("t"),
	}
	for name, b := range builders {
		if _, _, err := b.ToSQL(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
