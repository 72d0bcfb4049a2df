package observability

import (
	"context"

	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// startTracing installs the Uptrace exporters as the global OTel providers. With
// UPTRACE_LOGS_ENABLED the service logger is mirrored into the log exporter too.
func startTracing(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	if reason := tracingDisabledReason(cfg); reason != "" {
		logger.Info("tracing disabled", "backend", "uptrace", "reason", reason)
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(uptraceOptions(cfg)...)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newLogBridge(cfg.ServiceVersion))
	}
	logger.Info("tracing enabled", "backend", "uptrace", "mirror_logs", cfg.UptraceLogsEnabled)

	return func(ctx context.Context) error {
		// Detach the bridge first so shutdown logs do not race the exporter.
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

func uptraceOptions(cfg config.Config) []uptrace.Option {
	return []uptrace.Option{
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attribute.String("matchstats.store", cfg.StoreDriver)),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	}
}

func tracingDisabledReason(cfg config.Config) string {
	if !cfg.UptraceEnabled {
		return "UPTRACE_ENABLED=false"
	}
	if cfg.UptraceDSN == "" {
		return "UPTRACE_DSN empty"
	}
	return ""
}
