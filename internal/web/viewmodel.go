package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"trendboard/internal/domain"
)

// watchlist is the fixed secondary-panel list: eight symbols, fixed order.
var watchlist = []struct {
	Symbol string
	Name   string
}{
	{"MRF.BO", "MRF Ltd"},
	{"RELIANCE.NS", "Reliance"},
	{"TCS.NS", "TCS"},
	{"INFY.NS", "Infosys"},
	{"HDFCBANK.NS", "HDFC Bank"},
	{"SBIN.NS", "SBI"},
	{"BEL.NS", "Bharat Electronics"},
	{"ITC.NS", "ITC"},
}

// viewState is the complete input state of one dashboard render. There is no
// other server-side state: every request re-derives the page from these.
type viewState struct {
	OpenClose       float64
	HighLow         float64
	InputCurrency   string
	Symbol          string
	RangeLabel      string
	DisplayCurrency string
	RunPredict      bool
}

func parseViewState(r *http.Request) viewState {
	q := r.URL.Query()
	state := viewState{
		InputCurrency:   "INR",
		Symbol:          "AAPL",
		RangeLabel:      "1M",
		DisplayCurrency: "USD",
	}
	if v, err := strconv.ParseFloat(q.Get("oc"), 64); err == nil {
		state.OpenClose = v
	}
	if v, err := strconv.ParseFloat(q.Get("hl"), 64); err == nil {
		state.HighLow = v
	}
	if v := q.Get("input_currency"); validCurrency(v) {
		state.InputCurrency = v
	}
	if v := q.Get("symbol"); v != "" {
		state.Symbol = v
	}
	if v := q.Get("range"); validRange(v) {
		state.RangeLabel = v
	}
	if v := q.Get("display"); validCurrency(v) {
		state.DisplayCurrency = v
	}
	state.RunPredict = q.Has("predict")
	return state
}

func validCurrency(code string) bool {
	for _, c := range domain.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

func validRange(label string) bool {
	for _, l := range domain.RangeLabels {
		if l == label {
			return true
		}
	}
	return false
}

// WatchRow is one rendered watchlist line, already converted into the
// display currency and formatted.
type WatchRow struct {
	Symbol string
	Name   string
	Price  string
	Change string
	Up     bool
}

// buildWatchlist renders the fixed list. Snapshots without two sessions of
// history are skipped, matching the source dashboard.
func (s *Server) buildWatchlist(ctx context.Context, displayCurrency string) []WatchRow {
	rows := make([]WatchRow, 0, len(watchlist))
	for _, w := range watchlist {
		snap := s.market.Live(ctx, w.Symbol)
		if !snap.Valid {
			continue
		}
		rate := s.market.Rate(ctx, snap.Currency, displayCurrency)
		price := snap.Price * rate
		change := snap.Change * rate
		rows = append(rows, WatchRow{
			Symbol: w.Symbol,
			Name:   w.Name,
			Price:  humanize.FormatFloat("#,###.##", price),
			Change: fmt.Sprintf("%+.2f", change),
			Up:     change >= 0,
		})
	}
	return rows
}
