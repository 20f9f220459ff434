// Package weather summarizes marine conditions at route endpoints. Wave
// heights map onto the Douglas sea state scale.
package weather

import (
	"context"

	"go.uber.org/zap"

	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/pkg/weatherapi"
)

// Conditions sums up the marine forecast at one endpoint.
type Conditions struct {
	Port          string  `json:"port"`
	MaxWaveHeight float64 `json:"max_wave_height_m"`
	SeaState      string  `json:"sea_state"`
	Severity      string  `json:"severity"` // low, medium, high
}

// SeaState maps a wave height in meters onto the Douglas scale label.
func SeaState(waveHeightM float64) string {
	switch {
	case waveHeightM < 0.1:
		return "calm"
	case waveHeightM < 0.5:
		return "smooth"
	case waveHeightM < 1.25:
		return "slight"
	case waveHeightM < 2.5:
		return "moderate"
	case waveHeightM < 4:
		return "rough"
	case waveHeightM < 6:
		return "very rough"
	case waveHeightM < 9:
		return "high"
	default:
		return "very high"
	}
}

// Severity grades a wave height for operational planning.
func Severity(waveHeightM float64) string {
	switch {
	case waveHeightM >= 4:
		return "high"
	case waveHeightM >= 2.5:
		return "medium"
	default:
		return "low"
	}
}

// Service fetches endpoint conditions. A nil client disables the lookup.
type Service struct {
	client weatherapi.Client
	logger *zap.Logger
}

// NewService builds a weather service on the given forecast client.
func NewService(client weatherapi.Client) *Service {
	return &Service{
		client: client,
		logger: zap.L().With(zap.String("component", "weather")),
	}
}

// Enabled reports whether a forecast backend is configured.
func (s *Service) Enabled() bool { return s.client != nil }

// PortConditions fetches and grades the forecast at one port. days bounds
// the forecast horizon. Failures are returned to the caller, who treats
// weather as advisory and never fails a request over it.
func (s *Service) PortConditions(ctx context.Context, rec model.LocationRecord, days int) (*Conditions, error) {
	fc, err := s.client.MarineForecast(ctx, rec.Coordinates.Lat, rec.Coordinates.Lon, days)
	if err != nil {
		s.logger.Warn("marine forecast failed",
			zap.String("port", rec.Key), zap.Error(err))
		return nil, err
	}

	maxWave := 0.0
	for _, h := range fc.Daily.WaveHeightMax {
		if h > maxWave {
			maxWave = h
		}
	}

	return &Conditions{
		Port:          rec.Name,
		MaxWaveHeight: maxWave,
		SeaState:      SeaState(maxWave),
		Severity:      Severity(maxWave),
	}, nil
}
