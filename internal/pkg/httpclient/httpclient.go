package httpclient

import (
	"booking-engine/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	ConsecutiveBreaker = "consecutive"
	RateBreaker        = "rate"
	ThresholdBreaker   = "threshold"
)

// InitCircuitBreaker builds the breaker named by cbType, defaulting to a consecutive-failure breaker.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case RateBreaker:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSample)
	case ThresholdBreaker:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, nil)
}
