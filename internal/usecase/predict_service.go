package usecase

import (
	"context"

	"trendboard/internal/domain"
)

// PredictService rescales the user's two features into the model currency
// and runs the classifier. Label 1 maps to UP, anything else to DOWN.
type PredictService struct {
	market *MarketService
	model  domain.Classifier
}

func NewPredictService(market *MarketService, model domain.Classifier) *PredictService {
	return &PredictService{market: market, model: model}
}

// Predict takes the open-close and high-low deltas as entered, expressed in
// inputCurrency, converts them into the model currency and returns the
// binary trend label. Deterministic for identical inputs inside a rate TTL
// window.
func (s *PredictService) Predict(ctx context.Context, openCloseDelta, highLowDelta float64, inputCurrency string) domain.Trend {
	rate := s.market.Rate(ctx, inputCurrency, s.model.Currency())
	if s.model.Predict(openCloseDelta*rate, highLowDelta*rate) == 1 {
		return domain.TrendUp
	}
	return domain.TrendDown
}

// ModelCurrency exposes the training currency for the status endpoint.
func (s *PredictService) ModelCurrency() string {
	return s.model.Currency()
}
