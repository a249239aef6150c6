package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"trendboard/internal/domain"
)

// Memoization windows. Live quotes expire faster because the watchlist
// redraws them on every poll.
const (
	historyTTL = 10 * time.Minute
	rateTTL    = 10 * time.Minute
	liveTTL    = 2 * time.Minute
)

// rangePeriods maps the dashboard range labels to Yahoo period codes.
var rangePeriods = map[string]string{
	"1D":  "1d",
	"1W":  "5d",
	"1M":  "1mo",
	"3M":  "3mo",
	"6M":  "6mo",
	"YTD": "ytd",
	"1Y":  "1y",
	"2Y":  "2y",
	"5Y":  "5y",
	"10Y": "10y",
	"ALL": "max",
}

type cachedChart struct {
	chart  *domain.Chart
	expiry time.Time
}

type cachedLive struct {
	snap   domain.QuoteSnapshot
	expiry time.Time
}

type cachedRate struct {
	factor float64
	expiry time.Time
}

// MarketService wraps the market data provider with process-lifetime TTL
// memoization. A lookup past expiry is a miss; the fresh fetch overwrites
// the entry. Entries are shared across requests and never mutated in place.
type MarketService struct {
	provider domain.MarketData
	logger   *zap.Logger

	mu         sync.Mutex
	chartCache map[string]cachedChart
	liveCache  map[string]cachedLive
	rateCache  map[string]cachedRate

	timeNow func() time.Time // for testing
}

func NewMarketService(provider domain.MarketData, logger *zap.Logger) *MarketService {
	return &MarketService{
		provider:   provider,
		logger:     logger,
		chartCache: make(map[string]cachedChart),
		liveCache:  make(map[string]cachedLive),
		rateCache:  make(map[string]cachedRate),
		timeNow:    time.Now,
	}
}

// History returns the price series for one of the dashboard range labels,
// plus the instrument's native currency. Provider failures and unknown
// symbols both come back as an empty series: "nothing to display", not a
// fault. Unknown labels fall back to the 1M window.
func (s *MarketService) History(ctx context.Context, symbol, rangeLabel string) (domain.PriceSeries, string) {
	key := symbol + "|" + rangeLabel
	now := s.timeNow()

	s.mu.Lock()
	if c, ok := s.chartCache[key]; ok && now.Before(c.expiry) {
		s.mu.Unlock()
		return c.chart.Bars, c.chart.Currency
	}
	s.mu.Unlock()

	period, ok := rangePeriods[rangeLabel]
	if !ok {
		period = "1mo"
	}
	chart, err := s.provider.FetchChart(ctx, symbol, period)
	if err != nil {
		s.logger.Warn("history fetch failed",
			zap.String("symbol", symbol),
			zap.String("range", rangeLabel),
			zap.Error(err))
		chart = &domain.Chart{Symbol: symbol}
	}
	if chart.Currency == "" {
		chart.Currency = domain.DefaultCurrency
	}

	s.mu.Lock()
	s.chartCache[key] = cachedChart{chart: chart, expiry: now.Add(historyTTL)}
	s.mu.Unlock()
	return chart.Bars, chart.Currency
}

// Live returns the latest close and the change versus the prior session.
// With fewer than two daily closes the snapshot is marked invalid but still
// carries whatever currency is known.
func (s *MarketService) Live(ctx context.Context, symbol string) domain.QuoteSnapshot {
	now := s.timeNow()

	s.mu.Lock()
	if c, ok := s.liveCache[symbol]; ok && now.Before(c.expiry) {
		s.mu.Unlock()
		return c.snap
	}
	s.mu.Unlock()

	snap := domain.QuoteSnapshot{Symbol: symbol, Currency: domain.DefaultCurrency}
	chart, err := s.provider.FetchChart(ctx, symbol, "2d")
	if err != nil {
		s.logger.Warn("live fetch failed", zap.String("symbol", symbol), zap.Error(err))
	} else {
		if chart.Currency != "" {
			snap.Currency = chart.Currency
		}
		if n := len(chart.Bars); n >= 2 {
			snap.Price = chart.Bars[n-1].Close
			snap.Change = chart.Bars[n-1].Close - chart.Bars[n-2].Close
			snap.Valid = true
		}
	}

	s.mu.Lock()
	s.liveCache[symbol] = cachedLive{snap: snap, expiry: now.Add(liveTTL)}
	s.mu.Unlock()
	return snap
}

// Rate returns the multiplicative factor converting an amount in from into
// to, taken from the latest daily close of the synthetic pair {from}{to}=X.
// Identity when the currencies match. A missing FX quote falls back to 1.0,
// which leaves amounts unconverted without telling the caller; preserved
// from the original behavior.
func (s *MarketService) Rate(ctx context.Context, from, to string) float64 {
	if from == to {
		return 1.0
	}
	key := from + to
	now := s.timeNow()

	s.mu.Lock()
	if c, ok := s.rateCache[key]; ok && now.Before(c.expiry) {
		s.mu.Unlock()
		return c.factor
	}
	s.mu.Unlock()

	factor := 1.0
	chart, err := s.provider.FetchChart(ctx, from+to+"=X", "1d")
	if err != nil {
		s.logger.Warn("fx fetch failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err))
	} else if len(chart.Bars) > 0 {
		factor = chart.Bars.LastClose()
	}

	s.mu.Lock()
	s.rateCache[key] = cachedRate{factor: factor, expiry: now.Add(rateTTL)}
	s.mu.Unlock()
	return factor
}

// CacheStats reports entry counts per cache, for the status endpoint.
func (s *MarketService) CacheStats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"chart": len(s.chartCache),
		"live":  len(s.liveCache),
		"rate":  len(s.rateCache),
	}
}
