package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/referee"
	"go.opentelemetry.io/otel/attribute"
)

// RefereesPage is the referees listing view model.
type RefereesPage struct {
	Page     champ.PageData
	Referees []referee.Summary
}

// RefereePage is the single referee view model. Info is nil when the referee is unknown.
type RefereePage struct {
	Page        champ.PageData
	Name        string
	Info        *referee.Info
	Suggestions []string
}

type RefereeService struct {
	champRepo   champ.Repository
	refereeRepo referee.Repository
}

func NewRefereeService(champRepo champ.Repository, refereeRepo referee.Repository) *RefereeService {
	return &RefereeService{
		champRepo:   champRepo,
		refereeRepo: refereeRepo,
	}
}

func (s *RefereeService) ListReferees(ctx context.Context) (RefereesPage, error) {
	ctx, span := startServiceSpan(ctx, "RefereeService", "ListReferees")
	defer span.End()

	page, err := indexPageData(ctx, s.champRepo, champ.LevelReferee, true)
	if err != nil {
		return RefereesPage{}, err
	}

	items, err := s.refereeRepo.ListSummaries(ctx)
	if err != nil {
		return RefereesPage{}, storeError(err, "list referee summaries")
	}
	if items == nil {
		items = []referee.Summary{}
	}

	return RefereesPage{Page: page, Referees: items}, nil
}

// GetReferee looks a referee up by exact name. An unknown referee is an empty page, not an error.
func (s *RefereeService) GetReferee(ctx context.Context, name string) (RefereePage, error) {
	ctx, span := startServiceSpan(ctx, "RefereeService", "GetReferee", attribute.String("referee.name", name))
	defer span.End()

	page, err := indexPageData(ctx, s.champRepo, champ.LevelRefName, true)
	if err != nil {
		return RefereePage{}, err
	}

	out := RefereePage{Page: page, Name: name, Suggestions: []string{}}
	if strings.TrimSpace(name) == "" {
		return out, nil
	}

	docs, err := s.refereeRepo.FindByName(ctx, name)
	if err != nil {
		return RefereePage{}, storeError(err, "find referee")
	}
	if info, ok := referee.FindReferee(docs, name); ok {
		out.Info = &info
		return out, nil
	}

	summaries, err := s.refereeRepo.ListSummaries(ctx)
	if err != nil {
		return RefereePage{}, storeError(err, "list referee summaries")
	}
	out.Suggestions = referee.Suggest(summaries, name, referee.MaxSuggestions)

	return out, nil
}
