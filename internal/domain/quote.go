package domain

import "time"

// DefaultCurrency is assumed whenever the provider omits instrument metadata.
const DefaultCurrency = "USD"

// Currencies the dashboard offers for prediction input and display.
var Currencies = []string{"USD", "INR", "EUR", "GBP"}

// RangeLabels are the selectable chart windows, in display order.
var RangeLabels = []string{"1D", "1W", "1M", "3M", "6M", "YTD", "1Y", "2Y", "5Y", "10Y", "ALL"}

// Bar is a single daily OHLCV bar.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a chronological sequence of bars for one symbol over one
// requested range. An empty series means "no data", which is a valid state,
// not a fault.
type PriceSeries []Bar

// FirstClose returns the first closing price, or 0 for an empty series.
func (s PriceSeries) FirstClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Close
}

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s PriceSeries) LastClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}

// Scale returns a copy with every price field multiplied by factor. The
// receiver is left untouched; fetched series are shared through the cache.
func (s PriceSeries) Scale(factor float64) PriceSeries {
	out := make(PriceSeries, len(s))
	for i, b := range s {
		b.Open *= factor
		b.High *= factor
		b.Low *= factor
		b.Close *= factor
		out[i] = b
	}
	return out
}

// Chart is a provider result: the price series plus the currency the
// instrument is natively quoted in.
type Chart struct {
	Symbol   string      `json:"symbol"`
	Bars     PriceSeries `json:"bars"`
	Currency string      `json:"currency"`
}

// QuoteSnapshot is the latest price and change versus the prior session for
// one symbol. Valid is false when fewer than two daily closes exist; the
// currency is still populated in that case.
type QuoteSnapshot struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	Currency string  `json:"currency"`
	Valid    bool    `json:"valid"`
}

// Trend is the binary prediction label.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
)
