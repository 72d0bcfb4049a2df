package referee

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"
)

const averagePlaces = 2

// MaxSuggestions caps the names offered when a referee is not found.
const MaxSuggestions = 5

// FindReferee returns the first entry named exactly name. A missing referee is not an error.
func FindReferee(docs []StatsDocument, name string) (Info, bool) {
	for _, doc := range docs {
		for _, e := range doc.RefsStats {
			if e.Name == name {
				return newInfo(e), true
			}
		}
	}
	return Info{}, false
}

func newInfo(e Entry) Info {
	var extra map[string]any
	if len(e.Extra) > 0 {
		extra = make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			extra[k] = v
		}
	}

	return Info{
		Name:                e.Name,
		Country:             e.Country,
		Matches:             e.Matches,
		YellowCards:         e.YellowCards,
		RedCards:            e.RedCards,
		Penalties:           e.Penalties,
		Fouls:               e.Fouls,
		YellowCardsPerMatch: PerMatch(e.YellowCards, e.Matches),
		RedCardsPerMatch:    PerMatch(e.RedCards, e.Matches),
		PenaltiesPerMatch:   PerMatch(e.Penalties, e.Matches),
		FoulsPerMatch:       PerMatch(e.Fouls, e.Matches),
		Extra:               extra,
	}
}

// PerMatch returns total/matches rounded to two places, or zero when no matches were played.
func PerMatch(total, matches int) decimal.Decimal {
	if matches <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).
		DivRound(decimal.NewFromInt(int64(matches)), averagePlaces)
}

// Suggest ranks listed referee names by edit distance to name and returns at most limit of them.
func Suggest(summaries []Summary, name string, limit int) []string {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" || limit <= 0 {
		return []string{}
	}

	type candidate struct {
		name     string
		distance int
	}

	seen := make(map[string]struct{}, len(summaries))
	candidates := make([]candidate, 0, len(summaries))
	for _, s := range summaries {
		if _, ok := seen[s.Name]; ok || s.Name == "" {
			continue
		}
		seen[s.Name] = struct{}{}

		lower := strings.ToLower(s.Name)
		distance := fuzzy.LevenshteinDistance(query, lower)
		// Partial names like a surname are accepted regardless of distance.
		if fuzzy.Match(query, lower) {
			distance = 0
		} else if distance > maxDistance(query) {
			continue
		}
		candidates = append(candidates, candidate{name: s.Name, distance: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.name)
	}
	return out
}

func maxDistance(query string) int {
	return max(2, len(query)/2)
}
