// Package view turns raw backend payloads into display-ready structures.
// Every field of the payload is optional; all defaulting happens here, in one
// place, and never mutates the stored result.
package view

import (
	"strings"

	"agripulse-terminal/internal/model"
)

// Display contract limits: ranked market lists show at most six entries, the
// sample-markets table at most twenty.
const (
	maxRankedMarkets = 6
	maxSampleMarkets = 20
)

// Theme is the color semantic of the recommendation banner.
type Theme string

const (
	ThemeEmerald Theme = "emerald" // buy
	ThemeRose    Theme = "rose"    // sell
	ThemeAmber   Theme = "amber"   // hold / anything else
)

const (
	defaultAction          = "HOLD"
	defaultConfidence      = 72 // not 0: an empty gauge would be misleading
	defaultReason          = "No reason provided."
	defaultFactors         = "No major factors detected."
	defaultSentiment       = "neutral"
	defaultKeywords        = "—"
	defaultYieldChange     = "—"
	defaultForecastComment = "Model: simple trend"
)

// TerminalView is the display-ready projection of an AnalyticsResult.
type TerminalView struct {
	Commodity    string  `json:"commodity"`
	Location     string  `json:"location"`
	AveragePrice float64 `json:"average_price"`

	Action     string  `json:"action"`
	Theme      Theme   `json:"theme"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`

	YieldChange  string `json:"yield_change"`
	YieldFactors string `json:"yield_factors"`
	YieldNote    string `json:"yield_note"`

	Forecast        []model.ForecastPoint `json:"forecast"`
	ForecastComment string                `json:"forecast_comment"`

	SentimentOverall  string `json:"sentiment_overall"`
	SentimentKeywords string `json:"sentiment_keywords"`
	SentimentNote     string `json:"sentiment_note"`

	SellHigh []model.RankedMarket `json:"sell_high"`
	BuyLow   []model.RankedMarket `json:"buy_low"`

	MarketSample []model.MarketEntry `json:"market_sample"`
	SampleCount  int                 `json:"sample_count"`
}

// BuildTerminal derives the terminal view from a raw analytics payload. It is
// pure and total: any payload shape, including nil, produces a fully
// defaulted view, and rebuilding from the same payload yields an identical
// view.
func BuildTerminal(res *model.AnalyticsResult) TerminalView {
	if res == nil {
		res = &model.AnalyticsResult{}
	}

	v := TerminalView{
		Location:        res.Location,
		Forecast:        res.PriceForecast,
		ForecastComment: firstNonEmpty(res.PriceForecastComment, defaultForecastComment),
	}

	if res.Summary != nil {
		v.Commodity = res.Summary.Commodity
		v.AveragePrice = res.Summary.AveragePrice
	}

	v.Action, v.Theme = resolveAction(res.Recommendation)
	v.Confidence = resolveConfidence(res.Recommendation)
	v.Reason = resolveReason(res)

	v.YieldChange = defaultYieldChange
	v.YieldFactors = defaultFactors
	if res.YieldOutlook != nil {
		if res.YieldOutlook.ChangePercent != "" {
			v.YieldChange = res.YieldOutlook.ChangePercent
		}
		if len(res.YieldOutlook.Factors) > 0 {
			v.YieldFactors = strings.Join(res.YieldOutlook.Factors, ", ")
		}
	}
	v.YieldNote = firstNonEmpty(res.AISummary, res.PriceForecastComment)

	v.SentimentOverall = defaultSentiment
	v.SentimentKeywords = defaultKeywords
	if res.MarketSentiment != nil {
		if res.MarketSentiment.Overall != "" {
			v.SentimentOverall = res.MarketSentiment.Overall
		}
		if len(res.MarketSentiment.Keywords) > 0 {
			v.SentimentKeywords = strings.Join(res.MarketSentiment.Keywords, ", ")
		}
	}
	v.SentimentNote = firstNonEmpty(res.AIReason, res.AISummary)

	v.SellHigh = []model.RankedMarket{}
	v.BuyLow = []model.RankedMarket{}
	if res.OptimalMarket != nil {
		v.SellHigh = capRanked(res.OptimalMarket.SellHigh)
		v.BuyLow = capRanked(res.OptimalMarket.BuyLow)
	}

	v.MarketSample = res.MarketData
	if len(v.MarketSample) > maxSampleMarkets {
		v.MarketSample = v.MarketSample[:maxSampleMarkets]
	}
	if v.MarketSample == nil {
		v.MarketSample = []model.MarketEntry{}
	}
	v.SampleCount = len(v.MarketSample)

	return v
}

// resolveAction upper-cases the recommendation action, defaulting to HOLD
// when absent. The string is rendered as given; only exact BUY/SELL map to
// the non-neutral themes.
func resolveAction(rec *model.Recommendation) (string, Theme) {
	action := defaultAction
	if rec != nil && rec.Action != "" {
		action = strings.ToUpper(rec.Action)
	}
	switch action {
	case "BUY":
		return action, ThemeEmerald
	case "SELL":
		return action, ThemeRose
	default:
		return action, ThemeAmber
	}
}

func resolveConfidence(rec *model.Recommendation) float64 {
	if rec != nil && rec.Confidence != nil {
		return *rec.Confidence
	}
	return defaultConfidence
}

// resolveReason walks the ordered fallback chain: explicit reason, then
// ai_reason, then ai_summary, then the literal default. First non-empty wins.
func resolveReason(res *model.AnalyticsResult) string {
	reason := ""
	if res.Recommendation != nil {
		reason = res.Recommendation.Reason
	}
	return firstNonEmpty(reason, res.AIReason, res.AISummary, defaultReason)
}

func capRanked(markets []model.RankedMarket) []model.RankedMarket {
	if len(markets) > maxRankedMarkets {
		return markets[:maxRankedMarkets]
	}
	if markets == nil {
		return []model.RankedMarket{}
	}
	return markets
}

func firstNonEmpty(candidates ...string) string {
	for _, s := range candidates {
		if s != "" {
			return s
		}
	}
	return ""
}
