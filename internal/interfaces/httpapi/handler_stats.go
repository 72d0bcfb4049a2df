package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchstats/internal/usecase"
)

func (h *Handler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "GetHomePage")
	defer span.End()

	page, err := h.homeService.GetHomePage(ctx)
	if err != nil {
		h.logFailure(ctx, "get home page failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homePageToDTO(page))
}

func (h *Handler) GetSummaryPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "GetSummaryPage")
	defer span.End()

	page, err := h.summaryService.GetSummaryPage(ctx)
	if err != nil {
		h.logFailure(ctx, "get summary page failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryPageToDTO(page))
}

func (h *Handler) GetRefereesPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "GetRefereesPage")
	defer span.End()

	req := refereeRequest{Name: r.URL.Query().Get("name")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.Name == "" {
		page, err := h.refereeService.ListReferees(ctx)
		if err != nil {
			h.logFailure(ctx, "list referees failed", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, refereesPageToDTO(page))
		return
	}

	page, err := h.refereeService.GetReferee(ctx, req.Name)
	if err != nil {
		h.logFailure(ctx, "get referee failed", err, "referee", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refereePageToDTO(page))
}

func (h *Handler) GetLeaguePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "GetLeaguePage")
	defer span.End()

	params := parseLeaguePath(r)
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.leagueService.GetLeaguePage(ctx, params.Country, params.LeagueID)
	if err != nil {
		h.logFailure(ctx, "get league page failed", err, "league_id", params.LeagueID, "country", params.Country)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguePageToDTO(page))
}

func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "GetMatchStats")
	defer span.End()

	req := parseMatchStatsRequest(r)
	if err := h.validateRequest(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "invalid match stats request", "match_id", req.ID, "select", req.Select, "stats", req.Stats, "error", err)
		writeError(ctx, w, err)
		return
	}

	selection := req.selection()
	page, err := h.matchStatsService.GetMatchStats(ctx, usecase.MatchStatsQuery{
		Country:   req.Country,
		LeagueID:  req.LeagueID,
		MatchID:   req.ID,
		Selection: selection,
	})
	if err != nil {
		h.logFailure(ctx, "get match stats failed", err, "match_id", req.ID, "league_id", req.LeagueID, "mode", selection.Mode())
		writeError(ctx, w, err)
		return
	}

	h.metrics.ObserveProjection(page.View.Mode)
	writeSuccess(ctx, w, http.StatusOK, matchStatsPageToDTO(page))
}
