package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trendboard/internal/domain"
)

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := q.Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}
	rangeLabel := q.Get("range")
	if !validRange(rangeLabel) {
		rangeLabel = "1M"
	}
	display := q.Get("display")

	series, native := s.market.History(r.Context(), symbol, rangeLabel)
	currency := native
	if validCurrency(display) && len(series) > 0 {
		rate := s.market.Rate(r.Context(), native, display)
		series = series.Scale(rate)
		currency = display
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(domain.Chart{
		Symbol:   symbol,
		Bars:     series,
		Currency: currency,
	})
	if err != nil {
		s.logger.Error("Failed to encode chart", zap.Error(err))
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"status":         "ok",
		"model_currency": s.predict.ModelCurrency(),
		"cache":          s.market.CacheStats(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode status", zap.Error(err))
	}
}
