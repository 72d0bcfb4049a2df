package usecase

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/summary"
)

// SummaryPage is the leagues summary view model.
type SummaryPage struct {
	Page    champ.PageData
	Summary summary.View
}

type SummaryService struct {
	champRepo   champ.Repository
	summaryRepo summary.Repository
}

func NewSummaryService(champRepo champ.Repository, summaryRepo summary.Repository) *SummaryService {
	return &SummaryService{
		champRepo:   champRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *SummaryService) GetSummaryPage(ctx context.Context) (SummaryPage, error) {
	ctx, span := startServiceSpan(ctx, "SummaryService", "GetSummaryPage")
	defer span.End()

	page, err := indexPageData(ctx, s.champRepo, champ.LevelSummary, false)
	if err != nil {
		return SummaryPage{}, err
	}

	docs, err := s.summaryRepo.List(ctx)
	if err != nil {
		return SummaryPage{}, storeError(err, "list summaries")
	}

	return SummaryPage{
		Page:    page,
		Summary: summary.Build(docs),
	}, nil
}
