package memory

import (
	"embed"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/document"
)

//go:embed seed/*.json
var seedFS embed.FS

var seedJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Seed is the decoded content of the embedded statistics fixtures.
type Seed struct {
	Matches      []document.MatchStats
	Standings    []document.Standings
	RefsStats    []document.RefsStats
	RefSummaries []document.RefSummary
	Summaries    []document.Summary
	Listings     map[listing.Kind][]document.Listing
}

// LoadSeed decodes the embedded fixtures.
func LoadSeed() (Seed, error) {
	var (
		seed     Seed
		listings map[string][]document.Listing
	)

	files := []struct {
		name string
		dst  any
	}{
		{name: "matches.json", dst: &seed.Matches},
		{name: "standings.json", dst: &seed.Standings},
		{name: "refs_stats.json", dst: &seed.RefsStats},
		{name: "refs_summary.json", dst: &seed.RefSummaries},
		{name: "summary.json", dst: &seed.Summaries},
		{name: "listings.json", dst: &listings},
	}
	for _, f := range files {
		if err := decodeSeedFile(f.name, f.dst); err != nil {
			return Seed{}, err
		}
	}

	seed.Listings = make(map[listing.Kind][]document.Listing, len(listings))
	for kind, docs := range listings {
		seed.Listings[listing.Kind(kind)] = docs
	}

	return seed, nil
}

// LoadChamps reads the league catalog from path, or from the embedded catalog when path is empty.
func LoadChamps(path string) ([]champ.Champ, error) {
	var (
		raw []byte
		err error
	)
	path = strings.TrimSpace(path)
	if path == "" {
		raw, err = seedFS.ReadFile("seed/champs.json")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read champs catalog: %w", err)
	}

	var docs []document.Champ
	if err := seedJSON.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode champs catalog: %w", err)
	}

	out := make([]champ.Champ, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("decode champs catalog: league without id")
		}
		out = append(out, d.ToDomain())
	}
	return out, nil
}

func decodeSeedFile(name string, dst any) error {
	raw, err := seedFS.ReadFile("seed/" + name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := seedJSON.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode seed %s: %w", name, err)
	}
	return nil
}
