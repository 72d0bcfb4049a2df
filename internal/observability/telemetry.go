// Package observability starts the process-wide tracing, log export and profiling
// backends and stops them in reverse order.
package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

type stopFunc func(context.Context) error

// Telemetry owns the backends started by Start.
type Telemetry struct {
	logger *logging.Logger
	stops  []namedStop
}

type namedStop struct {
	name string
	stop stopFunc
}

// Start brings up tracing, profiling and the pprof listener according to cfg.
// Disabled backends are skipped. On error, backends already started are stopped.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{name: "uptrace", start: startTracing},
		{name: "pyroscope", start: startProfiling},
		{name: "pprof", start: startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, crerr.Wrapf(err, "start %s", s.name)
		}
		if stop != nil {
			t.stops = append(t.stops, namedStop{name: s.name, stop: stop})
		}
	}

	return t, nil
}

// Shutdown stops every started backend, last started first, and reports all failures.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs error
	for i := len(t.stops) - 1; i >= 0; i-- {
		s := t.stops[i]
		if err := s.stop(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "stop %s", s.name))
			continue
		}
		t.logger.Debug("telemetry backend stopped", "backend", s.name)
	}
	t.stops = nil

	return errs
}
