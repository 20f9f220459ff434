package model

import "time"

// Event is a single geopolitical news item relevant to a route.
type Event struct {
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Source         string    `json:"source"`
	URL            string    `json:"url,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	RelevanceScore int       `json:"relevance_score"` // 1-10
	Severity       string    `json:"severity"`        // low, medium, high

	SecurityRelated    bool   `json:"security_related,omitempty"`
	SanctionsRelated   bool   `json:"sanctions_related,omitempty"`
	ChokepointRelated  string `json:"chokepoint_related,omitempty"`
	BilateralRelevance string `json:"bilateral_relevance,omitempty"`
	GoodsSpecific      string `json:"goods_specific,omitempty"`
}

// Sentiment is the overall tone of a set of events.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
)

// Intelligence is the aggregated news analysis for one route.
type Intelligence struct {
	Events      []Event   `json:"events"`
	Sentiment   Sentiment `json:"sentiment"`
	Confidence  string    `json:"confidence"` // low, medium, high
	Summary     string    `json:"summary"`
	LastUpdated time.Time `json:"last_updated"`
}

// HighImpactCount returns how many events meet the given relevance floor.
func (i *Intelligence) HighImpactCount(minRelevance int) int {
	n := 0
	for _, e := range i.Events {
		if e.RelevanceScore >= minRelevance {
			n++
		}
	}
	return n
}
