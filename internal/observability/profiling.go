package observability

import (
	"context"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

// Request handling is allocation heavy and lock free, so mutex and block profiles are not collected.
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
}

func startProfiling(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("profiling disabled", "backend", "pyroscope")
		return nil, nil
	}

	pc := profilerConfig(cfg)
	profiler, err := pyroscope.Start(pc)
	if err != nil {
		return nil, err
	}
	logger.Info("profiling enabled", "backend", "pyroscope", "app", pc.ApplicationName, "every", pc.UploadRate)

	return func(context.Context) error { return profiler.Stop() }, nil
}

func profilerConfig(cfg config.Config) pyroscope.Config {
	pc := pyroscope.Config{
		ApplicationName: cfg.PyroscopeAppName,
		ServerAddress:   cfg.PyroscopeServerAddress,
		UploadRate:      cfg.PyroscopeUploadRate,
		Tags:            profileTags(cfg),
		ProfileTypes:    profileTypes,
	}
	// A token takes precedence over basic auth credentials.
	if cfg.PyroscopeAuthToken != "" {
		pc.AuthToken = cfg.PyroscopeAuthToken
	} else {
		pc.BasicAuthUser = cfg.PyroscopeBasicAuthUser
		pc.BasicAuthPassword = cfg.PyroscopeBasicAuthPassword
	}
	return pc
}

func profileTags(cfg config.Config) map[string]string {
	tags := make(map[string]string, 4)
	for k, v := range map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
		"store":   cfg.StoreDriver,
		"version": cfg.ServiceVersion,
	} {
		if v != "" {
			tags[k] = v
		}
	}
	return tags
}
