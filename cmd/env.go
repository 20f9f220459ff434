package main

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harborwatch/route-risk/internal/assess"
	"github.com/harborwatch/route-risk/internal/assessor"
	"github.com/harborwatch/route-risk/internal/monitoring"
	"github.com/harborwatch/route-risk/internal/news"
	"github.com/harborwatch/route-risk/internal/refdata"
	"github.com/harborwatch/route-risk/internal/resilience"
	"github.com/harborwatch/route-risk/internal/store"
	"github.com/harborwatch/route-risk/internal/weather"
	anthropicpkg "github.com/harborwatch/route-risk/pkg/anthropic"
	"github.com/harborwatch/route-risk/pkg/openai"
	"github.com/harborwatch/route-risk/pkg/weatherapi"
)

// appEnv holds the initialized services shared by the serve and assess
// commands.
type appEnv struct {
	Store    *store.SQLiteStore
	Refdata  *refdata.Store
	Pipeline *assess.Pipeline
	Breaker  *resilience.CircuitBreaker
	Metrics  *monitoring.Metrics
}

// Close releases resources held by the environment.
func (e *appEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv sets up the reference store, audit log, assessor, and pipeline.
// Callers should defer env.Close(). withMetrics controls registration with
// the global prometheus registry and should be true only for serve.
func initEnv(ctx context.Context, mode string, withMetrics bool) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	rules, err := loadHazardRules()
	if err != nil {
		return nil, err
	}
	ref, err := refdata.New(rules)
	if err != nil {
		return nil, eris.Wrap(err, "init reference store")
	}

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate audit store")
	}

	asr, err := initAssessor()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: cfg.Assessor.FailureThreshold,
		ResetTimeout:     time.Duration(cfg.Assessor.ResetTimeoutSecs) * time.Second,
		OnStateChange: func(from, to resilience.CircuitState) {
			zap.L().Warn("assessor circuit state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	var wx *weather.Service
	if cfg.Weather.Enabled {
		wx = weather.NewService(weatherapi.NewClient(weatherapi.WithBaseURL(cfg.Weather.BaseURL)))
	}

	var metrics *monitoring.Metrics
	if withMetrics {
		metrics = monitoring.NewMetrics()
	}

	clock := clockwork.NewRealClock()
	newsSvc := news.NewService(news.NewStaticSearcher(clock), clock)

	pipe := assess.NewPipeline(ref, newsSvc, asr, assess.Options{
		MemoTTL:         time.Duration(cfg.Memo.TTLMinutes) * time.Minute,
		AssessorTimeout: time.Duration(cfg.Assessor.TimeoutSecs) * time.Second,
		Retry: resilience.RetryConfig{
			MaxAttempts: cfg.Assessor.MaxRetries,
			OnRetry:     resilience.RetryLogger("assessor", "assess"),
		},
		Breaker:  breaker,
		Weather:  wx,
		Recorder: st,
		Metrics:  metrics,
		Clock:    clock,
	})

	return &appEnv{
		Store:    st,
		Refdata:  ref,
		Pipeline: pipe,
		Breaker:  breaker,
		Metrics:  metrics,
	}, nil
}

func loadHazardRules() (refdata.HazardRules, error) {
	if cfg.Hazards.RulesPath == "" {
		return refdata.DefaultHazardRules(), nil
	}
	rules, err := refdata.LoadHazardRules(cfg.Hazards.RulesPath)
	if err != nil {
		return refdata.HazardRules{}, eris.Wrapf(err, "load hazard rules %s", cfg.Hazards.RulesPath)
	}
	zap.L().Info("loaded hazard rules override", zap.String("path", cfg.Hazards.RulesPath))
	return rules, nil
}

// initAssessor builds the configured provider, or returns nil for
// fallback-only operation.
func initAssessor() (assessor.Assessor, error) {
	switch cfg.Assessor.Provider {
	case "openai":
		client := openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model))
		return assessor.NewOpenAI(client, "openai"), nil
	case "grok":
		client := openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(openai.GrokBaseURL),
			openai.WithModel(cfg.OpenAI.Model))
		return assessor.NewOpenAI(client, "grok"), nil
	case "anthropic":
		client := anthropicpkg.NewClient(cfg.Anthropic.Key,
			anthropicpkg.WithModel(cfg.Anthropic.Model))
		return assessor.NewAnthropic(client), nil
	case "none", "":
		zap.L().Warn("no assessor provider configured, all scores come from the fallback scorer")
		return nil, nil
	default:
		return nil, eris.Errorf("unknown assessor provider %q", cfg.Assessor.Provider)
	}
}

// parseDate parses a YYYY-MM-DD departure date.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
