package provider

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"trendboard/internal/domain"
)

// DefaultBaseURL is the public Yahoo Finance chart API endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches daily bars from the Yahoo Finance v8 chart API.
type YahooProvider struct {
	client *resty.Client
	logger *zap.Logger
}

// NewYahooProvider builds a provider against baseURL. proxyURL may be empty.
func NewYahooProvider(baseURL, proxyURL string, timeout time.Duration, logger *zap.Logger) *YahooProvider {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooProvider{client: client, logger: logger}
}

// chartResponse mirrors the Yahoo Finance v8 chart payload. Quote fields are
// interface slices because Yahoo emits null entries for non-trading days.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
				Symbol   string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchChart fetches the daily-bar history for symbol over the given provider
// period code ("1d", "5d", "1mo", ..., "max").
func (p *YahooProvider) FetchChart(ctx context.Context, symbol, period string) (*domain.Chart, error) {
	var out chartResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    period,
		}).
		SetResult(&out).
		SetError(&out).
		Get("/v8/finance/chart/" + url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	if out.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", out.Chart.Error.Description)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo: status %s", resp.Status())
	}
	if len(out.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := out.Chart.Result[0]
	chart := &domain.Chart{
		Symbol:   symbol,
		Currency: result.Meta.Currency,
	}
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		// Known symbol with no trading history: empty series, currency kept.
		return chart, nil
	}

	quote := result.Indicators.Quote[0]
	bars := make(domain.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bar (holiday etc.)
		}
		var vol float64
		if i < len(quote.Volume) {
			vol = toFloat(quote.Volume[i])
		}
		bars = append(bars, domain.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	chart.Bars = bars

	p.logger.Debug("fetched chart",
		zap.String("symbol", symbol),
		zap.String("period", period),
		zap.Int("bars", len(bars)))
	return chart, nil
}
