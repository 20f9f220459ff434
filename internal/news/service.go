// Package news gathers and ranks geopolitical intelligence for a route. The
// analysis layer is intentionally simple and deterministic: keyword counts,
// not NLP.
package news

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harborwatch/route-risk/internal/model"
)

const (
	// perQueryResults caps results fetched per search angle.
	perQueryResults = 5
	// maxEvents caps the events returned in one Intelligence bundle.
	maxEvents = 10
	// highImpactThreshold marks an event as high impact.
	highImpactThreshold = 7
)

var negativeKeywords = []string{
	"conflict", "threat", "sanctions", "piracy", "attack", "tensions", "dispute", "crisis",
}

var positiveKeywords = []string{
	"improvement", "agreement", "cooperation", "stable", "secure", "peaceful", "progress",
}

// RouteContext describes the route a gather targets.
type RouteContext struct {
	DepartureCountry   string
	DestinationCountry string
	Chokepoints        []string
	GoodsType          string
}

// Service aggregates multi-angle news searches into one Intelligence bundle.
type Service struct {
	searcher Searcher
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewService builds an intelligence service over the given searcher.
func NewService(searcher Searcher, clock clockwork.Clock) *Service {
	return &Service{
		searcher: searcher,
		clock:    clock,
		logger:   zap.L().With(zap.String("component", "news")),
	}
}

// Gather runs all search angles concurrently, then dedupes and ranks the
// combined events. Individual angle failures are logged and
// skipped; Gather itself fails only when the context is cancelled.
func (s *Service) Gather(ctx context.Context, rc RouteContext) (model.Intelligence, error) {
	angles := s.buildAngles(rc)

	results := make([][]model.Event, len(angles))
	g, gctx := errgroup.WithContext(ctx)
	for i, angle := range angles {
		g.Go(func() error {
			events, err := s.searcher.Search(gctx, angle.query, perQueryResults)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Warn("search angle failed",
					zap.String("query", angle.query), zap.Error(err))
				return nil
			}
			angle.tag(events)
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Intelligence{}, err
	}

	var all []model.Event
	for _, events := range results {
		all = append(all, events...)
	}

	unique := dedupe(all)
	for i := range unique {
		unique[i].RelevanceScore = s.finalRelevance(unique[i], rc)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].RelevanceScore > unique[j].RelevanceScore
	})
	if len(unique) > maxEvents {
		unique = unique[:maxEvents]
	}

	sentiment, confidence := analyzeSentiment(unique)
	intel := model.Intelligence{
		Events:      unique,
		Sentiment:   sentiment,
		Confidence:  confidence,
		Summary:     summarize(unique),
		LastUpdated: s.clock.Now().UTC(),
	}
	s.logger.Debug("intelligence gathered",
		zap.Int("events", len(unique)),
		zap.String("sentiment", string(sentiment)),
		zap.String("confidence", confidence))
	return intel, nil
}

// searchAngle is one search query plus the tag it stamps on its results.
type searchAngle struct {
	query string
	tag   func([]model.Event)
}

func noTag([]model.Event) {}

func (s *Service) buildAngles(rc RouteContext) []searchAngle {
	angles := []searchAngle{
		{query: rc.DepartureCountry + " political news", tag: noTag},
		{query: rc.DestinationCountry + " political news", tag: noTag},
		{query: rc.DepartureCountry + " " + rc.DestinationCountry + " trade relations", tag: func(evs []model.Event) {
			for i := range evs {
				evs[i].BilateralRelevance = rc.DepartureCountry + "-" + rc.DestinationCountry
			}
		}},
		{query: "maritime security piracy threats", tag: func(evs []model.Event) {
			for i := range evs {
				evs[i].SecurityRelated = true
			}
		}},
		{query: "new sanctions " + rc.DepartureCountry + " " + rc.DestinationCountry, tag: func(evs []model.Event) {
			for i := range evs {
				evs[i].SanctionsRelated = true
			}
		}},
		{query: rc.GoodsType + " trade restrictions", tag: func(evs []model.Event) {
			for i := range evs {
				evs[i].GoodsSpecific = rc.GoodsType
			}
		}},
	}
	for _, cp := range rc.Chokepoints {
		angles = append(angles, searchAngle{
			query: cp + " shipping security",
			tag: func(evs []model.Event) {
				for i := range evs {
					evs[i].ChokepointRelated = cp
				}
			},
		})
	}
	return angles
}

var titleKeyPattern = regexp.MustCompile(`[^\w\s]`)

// dedupe drops events whose normalized title prefix was already seen.
func dedupe(events []model.Event) []model.Event {
	seen := make(map[string]bool, len(events))
	var out []model.Event
	for _, ev := range events {
		key := titleKeyPattern.ReplaceAllString(strings.ToLower(ev.Title), "")
		if len(key) > 50 {
			key = key[:50]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ev)
	}
	return out
}

// finalRelevance layers route-specific boosts onto an event's base score:
// country mentions +3 each, chokepoint mention +4 (once), goods mention +2,
// recency up to +2, severity up to +3. Capped at 10.
func (s *Service) finalRelevance(ev model.Event, rc RouteContext) int {
	score := ev.RelevanceScore
	if score == 0 {
		score = 5
	}
	text := strings.ToLower(ev.Title + " " + ev.Summary)

	if rc.DepartureCountry != "" && strings.Contains(text, strings.ToLower(rc.DepartureCountry)) {
		score += 3
	}
	if rc.DestinationCountry != "" && strings.Contains(text, strings.ToLower(rc.DestinationCountry)) {
		score += 3
	}
	for _, cp := range rc.Chokepoints {
		if strings.Contains(text, strings.ToLower(cp)) {
			score += 4
			break
		}
	}
	if rc.GoodsType != "" && strings.Contains(text, strings.ToLower(rc.GoodsType)) {
		score += 2
	}

	if !ev.PublishedAt.IsZero() {
		age := s.clock.Now().UTC().Sub(ev.PublishedAt)
		switch {
		case age <= 7*24*time.Hour:
			score += 2
		case age <= 30*24*time.Hour:
			score++
		}
	}

	switch ev.Severity {
	case "high":
		score += 3
	case "medium":
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}

// analyzeSentiment does a keyword-count sentiment pass and derives a
// confidence level from event count and source reliability.
func analyzeSentiment(events []model.Event) (model.Sentiment, string) {
	if len(events) == 0 {
		return model.SentimentNeutral, "low"
	}

	total := 0
	reliabilitySum := 0
	for _, ev := range events {
		text := strings.ToLower(ev.Title + " " + ev.Summary)
		for _, kw := range negativeKeywords {
			if strings.Contains(text, kw) {
				total--
			}
		}
		for _, kw := range positiveKeywords {
			if strings.Contains(text, kw) {
				total++
			}
		}
		reliabilitySum += SourceReliability(ev.Source)
	}

	avg := float64(total) / float64(len(events))
	sentiment := model.SentimentNeutral
	switch {
	case avg < -0.5:
		sentiment = model.SentimentNegative
	case avg > 0.5:
		sentiment = model.SentimentPositive
	}

	avgReliability := float64(reliabilitySum) / float64(len(events))
	confidence := "low"
	switch {
	case len(events) >= 5 && avgReliability >= 7:
		confidence = "high"
	case len(events) >= 3 && avgReliability >= 5:
		confidence = "medium"
	}
	return sentiment, confidence
}

// summarize produces the one-paragraph operator summary.
func summarize(events []model.Event) string {
	if len(events) == 0 {
		return "No significant geopolitical events identified affecting this route."
	}

	var highImpact []model.Event
	for _, ev := range events {
		if ev.RelevanceScore >= highImpactThreshold {
			highImpact = append(highImpact, ev)
		}
	}
	if len(highImpact) == 0 {
		return fmt.Sprintf("Monitoring %d geopolitical developments. Current threat level appears manageable with standard security protocols.", len(events))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Intelligence identifies %d high-impact events affecting route security and trade conditions. ", len(highImpact))

	security, sanctions, chokepoints := 0, 0, 0
	for _, ev := range highImpact {
		if ev.SecurityRelated {
			security++
		}
		if ev.SanctionsRelated {
			sanctions++
		}
		if ev.ChokepointRelated != "" {
			chokepoints++
		}
	}
	if security > 0 {
		fmt.Fprintf(&sb, "Security concerns: %d incidents. ", security)
	}
	if sanctions > 0 {
		fmt.Fprintf(&sb, "Trade restrictions: %d updates. ", sanctions)
	}
	if chokepoints > 0 {
		fmt.Fprintf(&sb, "Chokepoint alerts: %d issues. ", chokepoints)
	}
	sb.WriteString("Recommend enhanced monitoring and contingency planning.")
	return sb.String()
}
