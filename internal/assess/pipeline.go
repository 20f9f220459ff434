// Package assess runs the end-to-end route risk pipeline: resolve both
// ports, estimate the transit, gather news intelligence, call the external
// assessor, and fall back to the rule-based scorer when it cannot deliver.
package assess

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harborwatch/route-risk/internal/assessor"
	"github.com/harborwatch/route-risk/internal/fallback"
	"github.com/harborwatch/route-risk/internal/geo"
	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/internal/monitoring"
	"github.com/harborwatch/route-risk/internal/news"
	"github.com/harborwatch/route-risk/internal/refdata"
	"github.com/harborwatch/route-risk/internal/resilience"
	"github.com/harborwatch/route-risk/internal/weather"
)

const (
	defaultAssessorTimeout = 45 * time.Second
	defaultGatherTimeout   = 20 * time.Second
	maxForecastDays        = 7
)

// Recorder persists completed assessments for auditing. Record failures are
// logged and never fail the request.
type Recorder interface {
	Record(ctx context.Context, a *model.RouteAssessment) error
}

// Options tune the pipeline. The zero value is usable.
type Options struct {
	MemoTTL         time.Duration
	AssessorTimeout time.Duration
	GatherTimeout   time.Duration
	Retry           resilience.RetryConfig
	Breaker         *resilience.CircuitBreaker
	Weather         *weather.Service
	Recorder        Recorder
	Metrics         *monitoring.Metrics
	Clock           clockwork.Clock
}

// Pipeline orchestrates one assessment per call. Safe for concurrent use.
type Pipeline struct {
	store    *refdata.Store
	news     *news.Service
	assessor assessor.Assessor
	opts     Options
	memo     *Memo
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewPipeline wires the pipeline. asr may be nil, in which case every
// request scores via the fallback.
func NewPipeline(store *refdata.Store, newsSvc *news.Service, asr assessor.Assessor, opts Options) *Pipeline {
	if opts.AssessorTimeout <= 0 {
		opts.AssessorTimeout = defaultAssessorTimeout
	}
	if opts.GatherTimeout <= 0 {
		opts.GatherTimeout = defaultGatherTimeout
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		store:    store,
		news:     newsSvc,
		assessor: asr,
		opts:     opts,
		memo:     NewMemo(opts.MemoTTL, opts.Clock),
		clock:    opts.Clock,
		logger:   zap.L().With(zap.String("component", "assess")),
	}
}

// Assess runs the full pipeline for one query. It returns an error only for
// client-side problems: invalid input, an unknown port, or a cancelled
// context. Assessor-side failures are absorbed and answered by the fallback
// scorer, so a resolvable route always gets a best-effort assessment.
func (p *Pipeline) Assess(ctx context.Context, q model.RouteQuery) (*model.RouteAssessment, error) {
	start := p.clock.Now()

	if err := q.Validate(p.clock.Now()); err != nil {
		return nil, eris.Wrap(err, "assess: invalid query")
	}

	key := q.MemoKey()
	if a, ok := p.memo.Get(key); ok {
		p.opts.Metrics.ObserveMemo("hit")
		p.logger.Debug("memo hit", zap.String("key", key))
		return a, nil
	}
	p.opts.Metrics.ObserveMemo("miss")

	dep, err := p.store.Lookup(q.DeparturePort)
	if err != nil {
		p.opts.Metrics.ObserveLookupFailure()
		return nil, eris.Wrapf(err, "assess: departure port %q", q.DeparturePort)
	}
	dest, err := p.store.Lookup(q.DestinationPort)
	if err != nil {
		p.opts.Metrics.ObserveLookupFailure()
		return nil, eris.Wrapf(err, "assess: destination port %q", q.DestinationPort)
	}

	hazards := p.store.HazardsFor(dep, dest)
	est := geo.Estimate(dep, dest, q.GoodsType)
	depCountry := p.store.CountryProfile(dep.Country)
	destCountry := p.store.CountryProfile(dest.Country)

	geometry, err := geo.RouteGeometry(dep.Coordinates, dest.Coordinates)
	if err != nil {
		p.logger.Warn("route geometry failed", zap.Error(err))
	}

	intel, wx := p.gather(ctx, dep, dest, hazards, q.GoodsType, est.TotalDays)
	if ctx.Err() != nil {
		return nil, eris.Wrap(ctx.Err(), "assess: request cancelled")
	}

	bundle := assessor.Bundle{
		DeparturePort:   dep.Name,
		DestinationPort: dest.Name,
		DepartureDate:   q.DepartureDate.Format("2006-01-02"),
		CarrierName:     q.CarrierName,
		GoodsType:       q.GoodsType,
		Departure:       depCountry,
		Destination:     destCountry,
		Hazards:         hazards,
		Intel:           intel,
		DistanceKm:      est.DistanceKm,
		TransitDays:     est.TotalDays,
	}

	a := &model.RouteAssessment{
		ID:                   uuid.NewString(),
		EstimatedTransitDays: est.TotalDays,
		DistanceKm:           est.DistanceKm,
		Departure:            &dep,
		Destination:          &dest,
		DepartureCountry:     depCountry,
		DestinationCountry:   destCountry,
		RouteHazards:         hazards,
		RouteGeometry:        geometry,
		RecentEvents:         intel.Events,
		Weather:              wx,
		AssessedAt:           p.clock.Now().UTC(),
	}

	provider := "none"
	if p.assessor != nil {
		provider = p.assessor.Name()
	}

	result, aerr := p.callAssessor(ctx, bundle)
	if aerr == nil {
		a.RiskScore = result.Score
		a.RiskDescription = result.Description
		a.Summary = result.Summary
		a.Provenance = model.ProvenanceAssessor
	} else {
		reason := failureReason(aerr)
		p.opts.Metrics.ObserveAssessorFailure(provider, reason)
		p.logger.Warn("assessor unavailable, using fallback scorer",
			zap.String("provider", provider),
			zap.String("reason", reason),
			zap.Error(aerr))

		fb := fallback.Score(fallback.Input{
			Departure:   depCountry,
			Destination: destCountry,
			Hazards:     hazards,
			Events:      intel.Events,
		})
		a.RiskScore = fb.Score
		a.RiskDescription = fb.Description + " [" + reason + "]"
		a.Summary = fb.Summary
		a.Provenance = model.ProvenanceFallback
	}

	// A cancelled request may carry partial intelligence; never memoize it.
	if ctx.Err() == nil {
		p.memo.Put(key, a)
	}

	if p.opts.Recorder != nil {
		if err := p.opts.Recorder.Record(ctx, a); err != nil {
			p.logger.Warn("audit record failed", zap.String("id", a.ID), zap.Error(err))
		}
	}

	p.opts.Metrics.ObserveAssessment(string(a.Provenance), provider,
		p.clock.Since(start), len(intel.Events))
	return a, nil
}

// gather collects news intelligence and optional marine weather
// concurrently. Both are best-effort: a gather timeout degrades to an empty
// bundle rather than failing the request.
func (p *Pipeline) gather(ctx context.Context, dep, dest model.LocationRecord,
	hazards model.RouteHazards, goodsType string, transitDays int) (model.Intelligence, []model.PortWeather) {

	gctx, cancel := context.WithTimeout(ctx, p.opts.GatherTimeout)
	defer cancel()

	var (
		intel model.Intelligence
		wx    []model.PortWeather
	)

	g, gctx := errgroup.WithContext(gctx)
	g.Go(func() error {
		in, err := p.news.Gather(gctx, news.RouteContext{
			DepartureCountry:   dep.Country,
			DestinationCountry: dest.Country,
			Chokepoints:        hazards.Chokepoints,
			GoodsType:          goodsType,
		})
		if err != nil {
			return err
		}
		intel = in
		return nil
	})

	if p.opts.Weather != nil && p.opts.Weather.Enabled() {
		days := transitDays
		if days > maxForecastDays {
			days = maxForecastDays
		}
		g.Go(func() error {
			for _, rec := range []model.LocationRecord{dep, dest} {
				c, err := p.opts.Weather.PortConditions(gctx, rec, days)
				if err != nil || c == nil {
					continue
				}
				wx = append(wx, model.PortWeather{
					Port:          c.Port,
					MaxWaveHeight: c.MaxWaveHeight,
					SeaState:      c.SeaState,
					Severity:      c.Severity,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		p.logger.Warn("intelligence gather degraded", zap.Error(err))
	}
	return intel, wx
}

func (p *Pipeline) callAssessor(ctx context.Context, b assessor.Bundle) (*assessor.Result, error) {
	if p.assessor == nil {
		return nil, eris.Wrap(model.ErrAssessorUnavailable, "assess: no provider configured")
	}

	actx, cancel := context.WithTimeout(ctx, p.opts.AssessorTimeout)
	defer cancel()

	call := func(ctx context.Context) (*assessor.Result, error) {
		return p.assessor.Assess(ctx, b)
	}
	if p.opts.Breaker != nil {
		inner := call
		call = func(ctx context.Context) (*assessor.Result, error) {
			return resilience.ExecuteVal(ctx, p.opts.Breaker, inner)
		}
	}
	return resilience.DoVal(actx, p.opts.Retry, call)
}

// failureReason condenses an assessor error into the short diagnostic tag
// appended to fallback descriptions and used as a metrics label.
func failureReason(err error) string {
	switch {
	case eris.Is(err, resilience.ErrCircuitOpen):
		return "circuit open"
	case eris.Is(err, context.DeadlineExceeded):
		return "assessor timeout"
	default:
		return "assessor unavailable"
	}
}
