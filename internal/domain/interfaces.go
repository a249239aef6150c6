package domain

import "context"

// MarketData is the outbound port to the market data provider. A period is
// a provider range code ("1d", "1mo", "max", ...); the result carries the
// instrument's native currency alongside the bars.
type MarketData interface {
	FetchChart(ctx context.Context, symbol, period string) (*Chart, error)
}

// Classifier is the pre-trained binary trend model. It takes exactly two
// features, already rescaled into the model's training currency, and
// returns 1 for an expected upward move.
type Classifier interface {
	Predict(openCloseDelta, highLowDelta float64) int
	Currency() string
}
