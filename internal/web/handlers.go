package web

import (
	"html/template"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"trendboard/internal/domain"
)

// Templates
var templates *template.Template

func InitTemplates(dir string) error {
	var err error
	templates, err = template.ParseGlob(filepath.Join(dir, "*.html"))
	return err
}

// handleDashboard re-renders the entire page from the current widget state.
// Everything except the memoized fetches is recomputed on every request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	state := parseViewState(r)

	data := map[string]interface{}{
		"State":      state,
		"Ranges":     domain.RangeLabels,
		"Currencies": domain.Currencies,
	}

	if state.RunPredict {
		trend := s.predict.Predict(r.Context(), state.OpenClose, state.HighLow, state.InputCurrency)
		data["Prediction"] = string(trend)
	}

	series, native := s.market.History(r.Context(), state.Symbol, state.RangeLabel)
	if len(series) > 0 {
		rate := s.market.Rate(r.Context(), native, state.DisplayCurrency)
		data["Chart"] = BuildChartView(series.Scale(rate), state.Symbol, state.RangeLabel, state.DisplayCurrency)
	}

	data["Watchlist"] = s.buildWatchlist(r.Context(), state.DisplayCurrency)

	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("Template error", zap.Error(err))
		http.Error(w, "Internal Server Error", 500)
	}
}

// handleWatchlist serves the rows partial for the page's poll loop.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	display := r.URL.Query().Get("display")
	if !validCurrency(display) {
		display = "USD"
	}
	rows := s.buildWatchlist(r.Context(), display)
	if err := templates.ExecuteTemplate(w, "watchlist_rows", rows); err != nil {
		s.logger.Error("Template error", zap.Error(err))
	}
}
