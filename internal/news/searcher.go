package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/harborwatch/route-risk/internal/model"
)

// Searcher finds news items for a free-text query. Implementations must be
// safe for concurrent use.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.Event, error)
}

// sourceReliability scores news sources 1-10. Unlisted sources default to 5.
var sourceReliability = map[string]int{
	"reuters.com":           10,
	"bloomberg.com":         10,
	"ft.com":                9,
	"wsj.com":               9,
	"bbc.com":               8,
	"cnn.com":               7,
	"associated-press":      9,
	"maritimeexecutive.com": 8,
	"tradewinds.no":         8,
	"lloydslist.com":        9,
	"joc.com":               8,
}

// SourceReliability returns the reliability score for a source domain.
func SourceReliability(source string) int {
	s := strings.ToLower(source)
	for domain, score := range sourceReliability {
		if strings.Contains(s, domain) {
			return score
		}
	}
	return 5
}

type newsTemplate struct {
	title    string
	summary  string
	source   string
	severity string
}

// simulated headline templates by topic. {q} is replaced with the query.
var newsTemplates = map[string][]newsTemplate{
	"political": {
		{
			title:    "Political tensions rise around %s ahead of trade negotiations",
			summary:  "Diplomatic sources report increased political tensions that could impact trade relations.",
			source:   "reuters.com",
			severity: "medium",
		},
		{
			title:    "Government stability concerns linked to %s affect market confidence",
			summary:  "Recent political developments raise questions about regulatory continuity.",
			source:   "bloomberg.com",
			severity: "medium",
		},
	},
	"sanctions": {
		{
			title:    "New trade restrictions announced affecting %s",
			summary:  "Additional trade controls implemented on technology and dual-use goods.",
			source:   "ft.com",
			severity: "high",
		},
		{
			title:    "Sanctions compliance updates for shipping touching %s",
			summary:  "Maritime trade faces new compliance requirements under updated sanctions regime.",
			source:   "lloydslist.com",
			severity: "high",
		},
	},
	"security": {
		{
			title:    "Maritime security alert issued for %s",
			summary:  "Increased naval activity and security concerns in critical shipping lane.",
			source:   "maritimeexecutive.com",
			severity: "high",
		},
		{
			title:    "Piracy incidents reported near %s shipping routes",
			summary:  "Commercial vessels advised to maintain enhanced security protocols.",
			source:   "tradewinds.no",
			severity: "medium",
		},
	},
	"trade": {
		{
			title:    "Trade conditions around %s show signs of improvement",
			summary:  "Diplomatic progress may lead to reduced trade barriers and enhanced cooperation.",
			source:   "wsj.com",
			severity: "low",
		},
		{
			title:    "Commercial shipping rates affected by %s",
			summary:  "Market analysis shows impact on freight costs and route preferences.",
			source:   "joc.com",
			severity: "medium",
		},
	},
}

// StaticSearcher serves deterministic simulated headlines, used when no live
// news backend is configured. Identical queries always yield identical
// events, which the rest of the pipeline's tests rely on.
type StaticSearcher struct {
	clock clockwork.Clock
}

// NewStaticSearcher builds a simulated searcher on the given clock.
func NewStaticSearcher(clock clockwork.Clock) *StaticSearcher {
	return &StaticSearcher{clock: clock}
}

func (s *StaticSearcher) Search(ctx context.Context, query string, maxResults int) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templates := selectTemplates(query)
	if maxResults > 0 && len(templates) > maxResults {
		templates = templates[:maxResults]
	}

	now := s.clock.Now().UTC()
	events := make([]model.Event, 0, len(templates))
	for i, tpl := range templates {
		// Spread publication dates deterministically over the last month.
		age := time.Duration(3+7*i) * 24 * time.Hour
		events = append(events, model.Event{
			Title:          fmt.Sprintf(tpl.title, query),
			Summary:        tpl.summary,
			Source:         tpl.source,
			URL:            fmt.Sprintf("https://%s/article-%d", tpl.source, 1000+i),
			PublishedAt:    now.Add(-age),
			RelevanceScore: baseRelevance(tpl, query),
			Severity:       tpl.severity,
		})
	}
	return events, nil
}

// selectTemplates picks topic templates by keyword, mirroring how a real
// search backend would route the query. Unmatched queries fall back to the
// trade topic.
func selectTemplates(query string) []newsTemplate {
	q := strings.ToLower(query)
	var out []newsTemplate
	if containsAny(q, "political", "government", "diplomatic") {
		out = append(out, newsTemplates["political"]...)
	}
	if containsAny(q, "sanctions", "embargo", "restrictions") {
		out = append(out, newsTemplates["sanctions"]...)
	}
	if containsAny(q, "security", "piracy", "threat", "conflict", "blockage") {
		out = append(out, newsTemplates["security"]...)
	}
	if containsAny(q, "trade", "relations", "bilateral", "shipping") {
		out = append(out, newsTemplates["trade"]...)
	}
	if len(out) == 0 {
		out = newsTemplates["trade"]
	}
	return out
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// baseRelevance scores an article against its query: base 5, +2 per query
// word in the title, +1 per word in the summary, plus severity and source
// reliability boosts, capped at 10.
func baseRelevance(tpl newsTemplate, query string) int {
	score := 5
	title := strings.ToLower(fmt.Sprintf(tpl.title, query))
	summary := strings.ToLower(tpl.summary)

	for _, word := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(title, word) {
			score += 2
		}
		if strings.Contains(summary, word) {
			score++
		}
	}

	switch tpl.severity {
	case "high":
		score += 2
	case "medium":
		score++
	}

	switch rel := SourceReliability(tpl.source); {
	case rel >= 9:
		score += 2
	case rel >= 7:
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}
