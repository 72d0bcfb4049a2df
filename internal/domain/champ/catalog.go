package champ

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page levels rendered by the statistics pages.
const (
	LevelIndex   = "index"
	LevelSummary = "summary"
	LevelReferee = "referee"
	LevelRefName = "refName"
	LevelLeague  = "league"
	LevelMatch   = "match"
)

// MenuItem is one entry of the statistics navigation.
type MenuItem struct {
	LeagueID string
	Country  string
	Label    string
	Active   bool
}

// PageData is the navigation context shared by every statistics page.
type PageData struct {
	Level string
	Menu  []MenuItem
	// League is set on league and match pages.
	League *Champ
	Top    []Champ
}

// Menu builds the navigation from champs, marking activeLeagueID when it is present.
func Menu(champs []Champ, activeLeagueID string) []MenuItem {
	items := make([]MenuItem, 0, len(champs))
	for _, c := range champs {
		items = append(items, MenuItem{
			LeagueID: c.ID,
			Country:  DisplayCountry(c.Country),
			Label:    c.Name,
			Active:   activeLeagueID != "" && c.ID == activeLeagueID,
		})
	}
	return items
}

// TopLeagues keeps the featured leagues in catalog order.
func TopLeagues(champs []Champ) []Champ {
	out := make([]Champ, 0, len(champs))
	for _, c := range champs {
		if c.Top {
			out = append(out, c)
		}
	}
	return out
}

// DisplayCountry turns a path segment such as "south-korea" into "South Korea".
func DisplayCountry(country string) string {
	normalized := strings.Join(strings.FieldsFunc(country, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	}), " ")
	return cases.Title(language.English).String(normalized)
}
