package standings

import (
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// ErrMalformedInfo is returned when the stored legend is not a valid info document.
var ErrMalformedInfo = errors.New("malformed standings info")

type infoDocument struct {
	Description string            `json:"description"`
	Rows        []infoRowDocument `json:"rows"`
}

type infoRowDocument struct {
	Position int            `json:"position"`
	Label    string         `json:"label"`
	Color    string         `json:"color,omitempty"`
	Notes    map[string]any `json:"notes,omitempty"`
}

// Normalize splits rec into its three tables and decodes the legend once.
func Normalize(rec Record) (Table, error) {
	info, err := DecodeInfo(rec.Standings.Info)
	if err != nil {
		return Table{}, errors.Wrapf(err, "league %s", rec.LeagueID)
	}

	return Table{
		Overall: cloneRows(rec.Standings.Overall),
		Home:    cloneRows(rec.Standings.Home),
		Away:    cloneRows(rec.Standings.Away),
		Info:    info,
	}, nil
}

// DecodeInfo parses a serialized legend.
func DecodeInfo(raw string) (Info, error) {
	if strings.TrimSpace(raw) == "" {
		return Info{}, errors.Mark(errors.New("empty info document"), ErrMalformedInfo)
	}

	var doc infoDocument
	if err := sonic.UnmarshalString(raw, &doc); err != nil {
		return Info{}, errors.Mark(errors.Wrap(err, "decode info"), ErrMalformedInfo)
	}

	info := Info{Description: doc.Description}
	if len(doc.Rows) > 0 {
		info.Rows = make([]InfoRow, 0, len(doc.Rows))
		for _, r := range doc.Rows {
			info.Rows = append(info.Rows, InfoRow(r))
		}
	}
	return info, nil
}

// EncodeInfo serializes a legend in the stored format.
func EncodeInfo(info Info) (string, error) {
	doc := infoDocument{Description: info.Description}
	for _, r := range info.Rows {
		doc.Rows = append(doc.Rows, infoRowDocument(r))
	}
	return sonic.MarshalString(doc)
}

// CountryPattern turns a user supplied country into a literal pattern.
// Stores match it case-insensitively and as a substring.
func CountryPattern(country string) string {
	return regexp.QuoteMeta(strings.TrimSpace(country))
}

func cloneRows(rows []Row) []Row {
	if rows == nil {
		return []Row{}
	}
	return append([]Row(nil), rows...)
}
