package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

func TestStart_AllBackendsDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "matchstats-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(tel.stops) != 0 {
		t.Fatalf("expected nothing started, got %d backends", len(tel.stops))
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofListensAndStops(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(tel.stops) != 1 || tel.stops[0].name != "pprof" {
		t.Fatalf("expected pprof to be running, got %+v", tel.stops)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestShutdown_ReverseOrderAndJoinedErrors(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	tel := &Telemetry{logger: logging.NewNop()}
	for _, name := range []string{"uptrace", "pyroscope", "pprof"} {
		name := name
		tel.stops = append(tel.stops, namedStop{name: name, stop: func(context.Context) error {
			order = append(order, name)
			if name == "pyroscope" {
				return boom
			}
			return nil
		}})
	}

	err := tel.Shutdown(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected stop failure to be reported, got %v", err)
	}
	want := []string{"pprof", "pyroscope", "uptrace"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected stop order %v, got %v", want, order)
		}
	}

	var nilTelemetry *Telemetry
	if err := nilTelemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil telemetry shutdown: %v", err)
	}
}

func TestTracingDisabledReason(t *testing.T) {
	if got := tracingDisabledReason(config.Config{}); got != "UPTRACE_ENABLED=false" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := tracingDisabledReason(config.Config{UptraceEnabled: true}); got != "UPTRACE_DSN empty" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := tracingDisabledReason(config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}); got != "" {
		t.Fatalf("expected tracing enabled, got %q", got)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: "prod", ServiceName: "matchstats-api", StoreDriver: config.StoreMongo})
	if tags["store"] != "mongo" || tags["env"] != "prod" {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if _, ok := tags["version"]; ok {
		t.Fatalf("empty version must not be tagged")
	}
}

func TestProfilerConfig_TokenWinsOverBasicAuth(t *testing.T) {
	pc := profilerConfig(config.Config{
		PyroscopeAppName:           "matchstats-api",
		PyroscopeAuthToken:         "tok",
		PyroscopeBasicAuthUser:     "user",
		PyroscopeBasicAuthPassword: "pass",
	})
	if pc.AuthToken != "tok" || pc.BasicAuthUser != "" || pc.BasicAuthPassword != "" {
		t.Fatalf("unexpected auth settings: %+v", pc)
	}
	if len(pc.ProfileTypes) != len(profileTypes) {
		t.Fatalf("expected configured profile types, got %v", pc.ProfileTypes)
	}

	pc = profilerConfig(config.Config{PyroscopeBasicAuthUser: "user", PyroscopeBasicAuthPassword: "pass"})
	if pc.BasicAuthUser != "user" || pc.BasicAuthPassword != "pass" {
		t.Fatalf("expected basic auth without token, got %+v", pc)
	}
}
