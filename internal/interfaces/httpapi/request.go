package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
)

type leaguePathParams struct {
	Country  string `validate:"required,max=64"`
	LeagueID string `validate:"required,max=64"`
}

// matchStatsRequest carries the raw selectors. Empty strings mean absent.
type matchStatsRequest struct {
	leaguePathParams
	ID     string `validate:"required,max=64"`
	Select string `validate:"omitempty,side"`
	Stats  string `validate:"omitempty,statkind"`
}

type refereeRequest struct {
	Name string `validate:"max=128"`
}

func parseLeaguePath(r *http.Request) leaguePathParams {
	return leaguePathParams{
		Country:  strings.TrimSpace(r.PathValue("country")),
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
	}
}

func parseMatchStatsRequest(r *http.Request) matchStatsRequest {
	q := r.URL.Query()
	return matchStatsRequest{
		leaguePathParams: parseLeaguePath(r),
		ID:               strings.TrimSpace(q.Get("id")),
		Select:           strings.TrimSpace(q.Get("select")),
		Stats:            strings.TrimSpace(q.Get("stats")),
	}
}

// selection maps presence of the validated selectors onto a projection mode.
func (req matchStatsRequest) selection() matchstats.Selection {
	var side *matchstats.Side
	if s, ok := matchstats.ParseSide(req.Select); ok {
		side = &s
	}
	var kind *matchstats.StatKind
	if k, ok := matchstats.ParseStatKind(req.Stats); ok {
		kind = &k
	}
	return matchstats.NewSelection(side, kind)
}
