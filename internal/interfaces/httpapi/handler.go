package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchstats/internal/domain/matchstats"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/riskibarqy/matchstats/internal/usecase"
)

type Handler struct {
	homeService       *usecase.HomeService
	summaryService    *usecase.SummaryService
	refereeService    *usecase.RefereeService
	leagueService     *usecase.LeagueStatsService
	matchStatsService *usecase.MatchStatsService
	metrics           *Metrics
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	homeService *usecase.HomeService,
	summaryService *usecase.SummaryService,
	refereeService *usecase.RefereeService,
	leagueService *usecase.LeagueStatsService,
	matchStatsService *usecase.MatchStatsService,
	metrics *Metrics,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		homeService:       homeService,
		summaryService:    summaryService,
		refereeService:    refereeService,
		leagueService:     leagueService,
		matchStatsService: matchStatsService,
		metrics:           metrics,
		logger:            logger,
		validator:         newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("side", func(fl validator.FieldLevel) bool {
		_, ok := matchstats.ParseSide(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("statkind", func(fl validator.FieldLevel) bool {
		_, ok := matchstats.ParseStatKind(fl.Field().String())
		return ok
	})
	return v
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure logs client errors at warn and server errors at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if classifyError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}
