package web

import (
	"fmt"
	"strings"

	"trendboard/internal/domain"
)

const (
	chartWidth  = 760
	chartHeight = 420
	chartPad    = 8
)

// Whole-window direction styling: a series that dips and recovers above its
// start still renders as up.
const (
	upLine   = "#00c853"
	upFill   = "rgba(0,255,0,0.25)"
	downLine = "#ff5252"
	downFill = "rgba(255,0,0,0.25)"
)

// ChartView carries everything the inline SVG template needs to draw a
// single filled price line.
type ChartView struct {
	Symbol     string
	RangeLabel string
	Currency   string
	Up         bool
	LineColor  string
	FillColor  string
	LinePath   string
	FillPath   string
	MinLabel   string
	MaxLabel   string
	Width      int
	Height     int
}

// Title is the chart heading, e.g. "AAPL Price (1M)".
func (c *ChartView) Title() string {
	return fmt.Sprintf("%s Price (%s)", c.Symbol, c.RangeLabel)
}

// YAxisLabel names the axis by display currency.
func (c *ChartView) YAxisLabel() string {
	return fmt.Sprintf("Price (%s)", c.Currency)
}

// BuildChartView lays the series out as SVG paths and classifies direction
// by comparing the first and last closes of the displayed window. Returns
// nil for an empty series; the page shows a "no data" notice instead.
func BuildChartView(series domain.PriceSeries, symbol, rangeLabel, currency string) *ChartView {
	if len(series) == 0 {
		return nil
	}

	up := series.LastClose() >= series.FirstClose()
	view := &ChartView{
		Symbol:     symbol,
		RangeLabel: rangeLabel,
		Currency:   currency,
		Up:         up,
		LineColor:  downLine,
		FillColor:  downFill,
		Width:      chartWidth,
		Height:     chartHeight,
	}
	if up {
		view.LineColor = upLine
		view.FillColor = upFill
	}

	min, max := series[0].Close, series[0].Close
	for _, b := range series {
		if b.Close < min {
			min = b.Close
		}
		if b.Close > max {
			max = b.Close
		}
	}
	view.MinLabel = fmt.Sprintf("%.2f", min)
	view.MaxLabel = fmt.Sprintf("%.2f", max)

	// Scale into the padded viewport. A flat or single-point series draws a
	// horizontal line at mid-height.
	innerW := float64(chartWidth - 2*chartPad)
	innerH := float64(chartHeight - 2*chartPad)
	xStep := 0.0
	if len(series) > 1 {
		xStep = innerW / float64(len(series)-1)
	}
	span := max - min

	var line strings.Builder
	var lastX float64
	for i, b := range series {
		x := float64(chartPad) + float64(i)*xStep
		y := float64(chartPad) + innerH/2
		if span > 0 {
			y = float64(chartPad) + innerH*(1-(b.Close-min)/span)
		}
		if i == 0 {
			fmt.Fprintf(&line, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&line, " L%.1f,%.1f", x, y)
		}
		lastX = x
	}
	view.LinePath = line.String()
	view.FillPath = fmt.Sprintf("%s L%.1f,%d L%d,%d Z",
		view.LinePath, lastX, chartHeight-chartPad, chartPad, chartHeight-chartPad)
	return view
}
