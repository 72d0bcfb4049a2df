package httpapi

import (
	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"github.com/riskibarqy/matchstats/internal/domain/standings"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
	"github.com/riskibarqy/matchstats/internal/usecase"
	"github.com/shopspring/decimal"
)

type menuItemDTO struct {
	LeagueID string `json:"leagueId"`
	Country  string `json:"country"`
	Label    string `json:"label"`
	Active   bool   `json:"active"`
}

type champDTO struct {
	ID        string `json:"id"`
	Country   string `json:"country"`
	Name      string `json:"name"`
	Standings bool   `json:"standings"`
	FlagURL   string `json:"flagUrl,omitempty"`
}

type pageDataDTO struct {
	Level  string        `json:"level"`
	Menu   []menuItemDTO `json:"menu"`
	League *champDTO     `json:"league,omitempty"`
	Top    []champDTO    `json:"top,omitempty"`
}

type listingDTO struct {
	LeagueID string           `json:"id"`
	Country  string           `json:"country"`
	Title    string           `json:"title"`
	Matches  []map[string]any `json:"matches"`
}

type homePageDTO struct {
	PageData     pageDataDTO  `json:"pageData"`
	TodayMatches []listingDTO `json:"todayMatches"`
	Fixtures     []listingDTO `json:"fixtures"`
}

type summaryRowDTO struct {
	LeagueID            string          `json:"id"`
	Country             string          `json:"country"`
	LeagueName          string          `json:"league"`
	MatchesPlayed       int             `json:"matchesPlayed"`
	GoalsPerMatch       decimal.Decimal `json:"goalsPerMatch"`
	HomeWinPct          decimal.Decimal `json:"homeWinPct"`
	DrawPct             decimal.Decimal `json:"drawPct"`
	AwayWinPct          decimal.Decimal `json:"awayWinPct"`
	BothTeamsScoredPct  decimal.Decimal `json:"bothTeamsScoredPct"`
	Over25Pct           decimal.Decimal `json:"over25Pct"`
	CornerKicksPerMatch decimal.Decimal `json:"cornerKicksPerMatch"`
	YellowCardsPerMatch decimal.Decimal `json:"yellowCardsPerMatch"`
	RedCardsPerMatch    decimal.Decimal `json:"redCardsPerMatch"`
}

type summaryPageDTO struct {
	PageData    pageDataDTO     `json:"pageData"`
	SummaryRows []summaryRowDTO `json:"summaryRows"`
	Total       summaryRowDTO   `json:"total"`
}

type refereeSummaryDTO struct {
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	League         string  `json:"league"`
	Matches        int     `json:"matches"`
	AvgYellowCards float64 `json:"avgYellowCards"`
	AvgRedCards    float64 `json:"avgRedCards"`
}

type refereesPageDTO struct {
	PageData     pageDataDTO         `json:"pageData"`
	RefereesList []refereeSummaryDTO `json:"refereesList"`
}

type refInfoDTO struct {
	Name                string          `json:"name"`
	Country             string          `json:"country"`
	Matches             int             `json:"matches"`
	YellowCards         int             `json:"yellowCards"`
	RedCards            int             `json:"redCards"`
	Penalties           int             `json:"penalties"`
	Fouls               int             `json:"fouls"`
	YellowCardsPerMatch decimal.Decimal `json:"yellowCardsPerMatch"`
	RedCardsPerMatch    decimal.Decimal `json:"redCardsPerMatch"`
	PenaltiesPerMatch   decimal.Decimal `json:"penaltiesPerMatch"`
	FoulsPerMatch       decimal.Decimal `json:"foulsPerMatch"`
	Extra               map[string]any  `json:"extra,omitempty"`
}

type refereePageDTO struct {
	PageData    pageDataDTO `json:"pageData"`
	Name        string      `json:"name"`
	RefInfo     *refInfoDTO `json:"refInfo"`
	Suggestions []string    `json:"suggestions"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"team"`
	LogoURL        string `json:"logo,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form,omitempty"`
}

type standingsInfoRowDTO struct {
	Position int            `json:"position"`
	Label    string         `json:"label"`
	Color    string         `json:"color,omitempty"`
	Notes    map[string]any `json:"notes,omitempty"`
}

type standingsInfoDTO struct {
	Description string                `json:"description,omitempty"`
	Rows        []standingsInfoRowDTO `json:"rows"`
}

type standingsTableDTO struct {
	Overall []standingRowDTO `json:"overall"`
	Home    []standingRowDTO `json:"home"`
	Away    []standingRowDTO `json:"away"`
	Info    standingsInfoDTO `json:"info"`
}

type leaguePageDTO struct {
	PageData     pageDataDTO        `json:"pageData"`
	Country      string             `json:"country"`
	LeagueID     string             `json:"leagueId"`
	Table        *standingsTableDTO `json:"table"`
	TodayMatches []listingDTO       `json:"todayMatches"`
	Fixtures     []listingDTO       `json:"fixtures"`
	LatestScores []listingDTO       `json:"latestScores"`
}

type statEntryDTO struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

type statBlockDTO struct {
	StatsFor string         `json:"statsFor"`
	Matches  []statEntryDTO `json:"matches"`
}

type matchStatsDataDTO struct {
	MatchID    string         `json:"matchId"`
	MatchInfo  map[string]any `json:"matchInfo"`
	MatchStats []statBlockDTO `json:"matchStats"`
}

type matchStatsPageDTO struct {
	PageData pageDataDTO       `json:"pageData"`
	Country  string            `json:"country"`
	LeagueID string            `json:"leagueId"`
	FlagURL  string            `json:"flagUrl,omitempty"`
	Stats    string            `json:"stats,omitempty"`
	Mode     string            `json:"mode"`
	Data     matchStatsDataDTO `json:"data"`
	Summary  bool              `json:"summary"`
}

func pageDataToDTO(page champ.PageData) pageDataDTO {
	out := pageDataDTO{
		Level: page.Level,
		Menu:  make([]menuItemDTO, 0, len(page.Menu)),
	}
	for _, m := range page.Menu {
		out.Menu = append(out.Menu, menuItemDTO{
			LeagueID: m.LeagueID,
			Country:  m.Country,
			Label:    m.Label,
			Active:   m.Active,
		})
	}
	if page.League != nil {
		league := champToDTO(*page.League)
		out.League = &league
	}
	for _, c := range page.Top {
		out.Top = append(out.Top, champToDTO(c))
	}
	return out
}

func champToDTO(c champ.Champ) champDTO {
	return champDTO{
		ID:        c.ID,
		Country:   champ.DisplayCountry(c.Country),
		Name:      c.Name,
		Standings: c.StandingsEnabled,
		FlagURL:   c.FlagURL,
	}
}

func listingsToDTO(docs []listing.Document) []listingDTO {
	out := make([]listingDTO, 0, len(docs))
	for _, d := range docs {
		matches := d.Matches
		if matches == nil {
			matches = []map[string]any{}
		}
		out = append(out, listingDTO{
			LeagueID: d.LeagueID,
			Country:  d.Country,
			Title:    d.Title,
			Matches:  matches,
		})
	}
	return out
}

func homePageToDTO(page usecase.HomePage) homePageDTO {
	return homePageDTO{
		PageData:     pageDataToDTO(page.Page),
		TodayMatches: listingsToDTO(page.TodayMatches),
		Fixtures:     listingsToDTO(page.Fixtures),
	}
}

func summaryRowToDTO(row summary.Row) summaryRowDTO {
	return summaryRowDTO{
		LeagueID:            row.LeagueID,
		Country:             row.Country,
		LeagueName:          row.LeagueName,
		MatchesPlayed:       row.MatchesPlayed,
		GoalsPerMatch:       row.GoalsPerMatch,
		HomeWinPct:          row.HomeWinPct,
		DrawPct:             row.DrawPct,
		AwayWinPct:          row.AwayWinPct,
		BothTeamsScoredPct:  row.BothTeamsScoredPct,
		Over25Pct:           row.Over25Pct,
		CornerKicksPerMatch: row.CornerKicksPerMatch,
		YellowCardsPerMatch: row.YellowCardsPerMatch,
		RedCardsPerMatch:    row.RedCardsPerMatch,
	}
}

func summaryPageToDTO(page usecase.SummaryPage) summaryPageDTO {
	rows := make([]summaryRowDTO, 0, len(page.Summary.Rows))
	for _, r := range page.Summary.Rows {
		rows = append(rows, summaryRowToDTO(r))
	}
	return summaryPageDTO{
		PageData:    pageDataToDTO(page.Page),
		SummaryRows: rows,
		Total:       summaryRowToDTO(page.Summary.Total),
	}
}

func refereesPageToDTO(page usecase.RefereesPage) refereesPageDTO {
	items := make([]refereeSummaryDTO, 0, len(page.Referees))
	for _, r := range page.Referees {
		items = append(items, refereeSummaryDTO(r))
	}
	return refereesPageDTO{
		PageData:     pageDataToDTO(page.Page),
		RefereesList: items,
	}
}

func refereePageToDTO(page usecase.RefereePage) refereePageDTO {
	out := refereePageDTO{
		PageData:    pageDataToDTO(page.Page),
		Name:        page.Name,
		Suggestions: page.Suggestions,
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if page.Info != nil {
		out.RefInfo = refInfoToDTO(*page.Info)
	}
	return out
}

func refInfoToDTO(info referee.Info) *refInfoDTO {
	return &refInfoDTO{
		Name:                info.Name,
		Country:             info.Country,
		Matches:             info.Matches,
		YellowCards:         info.YellowCards,
		RedCards:            info.RedCards,
		Penalties:           info.Penalties,
		Fouls:               info.Fouls,
		YellowCardsPerMatch: info.YellowCardsPerMatch,
		RedCardsPerMatch:    info.RedCardsPerMatch,
		PenaltiesPerMatch:   info.PenaltiesPerMatch,
		FoulsPerMatch:       info.FoulsPerMatch,
		Extra:               info.Extra,
	}
}

func standingRowsToDTO(rows []standings.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, standingRowDTO(r))
	}
	return out
}

func standingsTableToDTO(table standings.Table) *standingsTableDTO {
	info := standingsInfoDTO{
		Description: table.Info.Description,
		Rows:        make([]standingsInfoRowDTO, 0, len(table.Info.Rows)),
	}
	for _, r := range table.Info.Rows {
		info.Rows = append(info.Rows, standingsInfoRowDTO(r))
	}
	return &standingsTableDTO{
		Overall: standingRowsToDTO(table.Overall),
		Home:    standingRowsToDTO(table.Home),
		Away:    standingRowsToDTO(table.Away),
		Info:    info,
	}
}

func leaguePageToDTO(page usecase.LeaguePage) leaguePageDTO {
	out := leaguePageDTO{
		PageData:     pageDataToDTO(page.Page),
		Country:      page.Country,
		LeagueID:     page.LeagueID,
		TodayMatches: listingsToDTO(page.TodayMatches),
		Fixtures:     listingsToDTO(page.Fixtures),
		LatestScores: listingsToDTO(page.LatestScores),
	}
	if page.Table != nil {
		out.Table = standingsTableToDTO(*page.Table)
	}
	return out
}

func statBlocksToDTO(blocks []matchstats.StatBlock) []statBlockDTO {
	out := make([]statBlockDTO, 0, len(blocks))
	for _, b := range blocks {
		entries := make([]statEntryDTO, 0, len(b.Matches))
		for _, e := range b.Matches {
			entries = append(entries, statEntryDTO{Kind: string(e.Kind), Value: e.Value})
		}
		out = append(out, statBlockDTO{StatsFor: string(b.StatsFor), Matches: entries})
	}
	return out
}

func matchStatsPageToDTO(page usecase.MatchStatsPage) matchStatsPageDTO {
	out := matchStatsPageDTO{
		PageData: pageDataToDTO(page.Page),
		Country:  page.Country,
		LeagueID: page.LeagueID,
		Mode:     string(page.View.Mode),
		Data: matchStatsDataDTO{
			MatchID:    page.MatchID,
			MatchInfo:  page.MatchInfo,
			MatchStats: statBlocksToDTO(page.View.Blocks),
		},
		Summary: page.View.IsSummary,
	}
	if page.Page.League != nil {
		out.FlagURL = page.Page.League.FlagURL
	}
	if page.Stat != nil {
		out.Stats = string(*page.Stat)
	}
	return out
}
