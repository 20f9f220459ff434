package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// AlertType identifies the kind of alert.
type AlertType string

const (
	AlertFallbackRate AlertType = "fallback_rate"
	AlertHighRisk     AlertType = "high_risk_route"
	AlertCircuitOpen  AlertType = "assessor_circuit_open"
)

// Alert represents a single alert to be sent.
type Alert struct {
	Type      AlertType      `json:"type"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// AlerterConfig holds the thresholds and webhook target for alerting.
type AlerterConfig struct {
	WebhookURL            string  `yaml:"webhook_url" mapstructure:"webhook_url"`
	FallbackRateThreshold float64 `yaml:"fallback_rate_threshold" mapstructure:"fallback_rate_threshold"`
	HighRiskThreshold     int     `yaml:"high_risk_threshold" mapstructure:"high_risk_threshold"`
}

// Alerter evaluates a Snapshot against configured thresholds and sends
// alerts via webhook when thresholds are breached.
type Alerter struct {
	cfg    AlerterConfig
	client *http.Client
}

// NewAlerter creates a new Alerter with the given config.
func NewAlerter(cfg AlerterConfig) *Alerter {
	return &Alerter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Evaluate checks the snapshot against thresholds and returns any alerts.
func (a *Alerter) Evaluate(snap *Snapshot) []Alert {
	var alerts []Alert
	now := time.Now().UTC()

	// A high fallback rate means the external assessor is effectively down.
	// Require a minimum sample so a single failed call does not page anyone.
	if snap.AssessmentTotal >= 5 && a.cfg.FallbackRateThreshold > 0 &&
		snap.FallbackRate > a.cfg.FallbackRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertFallbackRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Fallback rate %.1f%% exceeds threshold %.1f%% (%d fallback / %d assessments in last %dh)",
				snap.FallbackRate*100, a.cfg.FallbackRateThreshold*100,
				snap.FallbackCount, snap.AssessmentTotal, snap.LookbackHours,
			),
			Details: map[string]any{
				"fallback_rate":  snap.FallbackRate,
				"threshold":      a.cfg.FallbackRateThreshold,
				"fallback_count": snap.FallbackCount,
				"total":          snap.AssessmentTotal,
			},
			Timestamp: now,
		})
	}

	if a.cfg.HighRiskThreshold > 0 && snap.MaxRiskScore >= a.cfg.HighRiskThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertHighRisk,
			Severity: "medium",
			Message: fmt.Sprintf(
				"Route assessed at risk score %d (threshold %d) in last %dh",
				snap.MaxRiskScore, a.cfg.HighRiskThreshold, snap.LookbackHours,
			),
			Details: map[string]any{
				"max_risk_score": snap.MaxRiskScore,
				"threshold":      a.cfg.HighRiskThreshold,
			},
			Timestamp: now,
		})
	}

	if snap.CircuitState == "open" {
		alerts = append(alerts, Alert{
			Type:     AlertCircuitOpen,
			Severity: "high",
			Message:  "Assessor circuit breaker is open; all requests are scoring via fallback",
			Details: map[string]any{
				"circuit_state": snap.CircuitState,
			},
			Timestamp: now,
		})
	}

	return alerts
}

// SendAlerts delivers alerts to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (a *Alerter) SendAlerts(ctx context.Context, alerts []Alert) int {
	if a.cfg.WebhookURL == "" || len(alerts) == 0 {
		return 0
	}

	sent := 0
	for _, alert := range alerts {
		if err := a.sendWebhook(ctx, alert); err != nil {
			zap.L().Error("monitoring: failed to send alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("monitoring: alert sent",
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
		sent++
	}
	return sent
}

// sendWebhook posts a single alert to the webhook URL.
func (a *Alerter) sendWebhook(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "monitoring: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "monitoring: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "monitoring: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return eris.Errorf("monitoring: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
