package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

const chartPayload = `{
  "chart": {
    "result": [{
      "meta": {"currency": "INR", "symbol": "TCS.NS"},
      "timestamp": [1704153600, 1704067200, 1704240000],
      "indicators": {"quote": [{
        "open":   [3900.0, 3880.0, null],
        "high":   [3950.0, 3920.0, null],
        "low":    [3890.0, 3860.0, null],
        "close":  [3940.0, 3910.0, null],
        "volume": [1200000, 1100000, null]
      }]}
    }],
    "error": null
  }
}`

const errorPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

const emptyPayload = `{
  "chart": {
    "result": [{
      "meta": {"currency": "USD", "symbol": "NEWIPO"},
      "timestamp": [],
      "indicators": {"quote": [{}]}
    }],
    "error": null
  }
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYahooProvider(srv.URL, "", 5*time.Second, zap.NewNop())
}

func TestFetchChart_ParsesBarsAndCurrency(t *testing.T) {
	var gotPath, gotRange string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartPayload))
	})

	chart, err := p.FetchChart(context.Background(), "TCS.NS", "1mo")
	if err != nil {
		t.Fatalf("FetchChart: %v", err)
	}
	if gotPath != "/v8/finance/chart/TCS.NS" {
		t.Errorf("Path = %s", gotPath)
	}
	if gotRange != "1mo" {
		t.Errorf("Range = %s", gotRange)
	}
	if chart.Currency != "INR" {
		t.Errorf("Currency = %s, want INR", chart.Currency)
	}
	// The null bar is dropped; the remaining two are sorted chronologically
	// even though the payload lists them out of order.
	if len(chart.Bars) != 2 {
		t.Fatalf("Bars = %d, want 2", len(chart.Bars))
	}
	if !chart.Bars[0].Time.Before(chart.Bars[1].Time) {
		t.Error("Bars are not chronological")
	}
	if chart.Bars[0].Close != 3910.0 || chart.Bars[1].Close != 3940.0 {
		t.Errorf("Closes = %v, %v", chart.Bars[0].Close, chart.Bars[1].Close)
	}
}

func TestFetchChart_APIErrorSurfaces(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(errorPayload))
	})

	if _, err := p.FetchChart(context.Background(), "NOPE.XX", "1mo"); err == nil {
		t.Fatal("Expected an error for a delisted symbol")
	}
}

func TestFetchChart_EmptyHistoryKeepsCurrency(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(emptyPayload))
	})

	chart, err := p.FetchChart(context.Background(), "NEWIPO", "max")
	if err != nil {
		t.Fatalf("FetchChart: %v", err)
	}
	if len(chart.Bars) != 0 {
		t.Errorf("Bars = %d, want 0", len(chart.Bars))
	}
	if chart.Currency != "USD" {
		t.Errorf("Currency = %s, want USD", chart.Currency)
	}
}

func TestFetchChart_ServerFailure(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	if _, err := p.FetchChart(context.Background(), "AAPL", "1d"); err == nil {
		t.Fatal("Expected an error for a 502 response")
	}
}

func TestFetchChart_FXPairSymbolEscaped(t *testing.T) {
	var gotPath string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartPayload))
	})

	if _, err := p.FetchChart(context.Background(), "USDINR=X", "1d"); err != nil {
		t.Fatalf("FetchChart: %v", err)
	}
	if gotPath != "/v8/finance/chart/USDINR=X" {
		t.Errorf("Path = %s", gotPath)
	}
}
