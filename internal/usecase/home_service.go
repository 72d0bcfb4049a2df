package usecase

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/domain/champ"
	"github.com/riskibarqy/matchstats/internal/domain/listing"
	"github.com/sourcegraph/conc/pool"
)

// HomePage is the landing page view model.
type HomePage struct {
	Page         champ.PageData
	TodayMatches []listing.Document
	Fixtures     []listing.Document
}

type HomeService struct {
	champRepo   champ.Repository
	listingRepo listing.Repository
}

func NewHomeService(champRepo champ.Repository, listingRepo listing.Repository) *HomeService {
	return &HomeService{
		champRepo:   champRepo,
		listingRepo: listingRepo,
	}
}

func (s *HomeService) GetHomePage(ctx context.Context) (HomePage, error) {
	ctx, span := startServiceSpan(ctx, "HomeService", "GetHomePage")
	defer span.End()

	page, err := indexPageData(ctx, s.champRepo, champ.LevelIndex, true)
	if err != nil {
		return HomePage{}, err
	}

	out := HomePage{Page: page}
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		out.TodayMatches, err = listDocuments(ctx, s.listingRepo, listing.KindTodayMatches, "")
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		out.Fixtures, err = listDocuments(ctx, s.listingRepo, listing.KindFixtures, "")
		return err
	})
	if err := p.Wait(); err != nil {
		return HomePage{}, err
	}

	return out, nil
}

// indexPageData builds the navigation of pages that are not bound to a league.
func indexPageData(ctx context.Context, repo champ.Repository, level string, withTop bool) (champ.PageData, error) {
	champs, err := repo.List(ctx)
	if err != nil {
		return champ.PageData{}, storeError(err, "list leagues")
	}

	page := champ.PageData{
		Level: level,
		Menu:  champ.Menu(champs, ""),
	}
	if withTop {
		page.Top = champ.TopLeagues(champs)
	}
	return page, nil
}
