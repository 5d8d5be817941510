package model

// AnalyticsResult matches the JSON shape of the /terminal response.
//
// The backend treats every field as optional: a thin payload (or even `{}`) is a
// normal response, not an error. Absent fields are resolved to display defaults
// by the view package; nothing here is mutated after decode.
type AnalyticsResult struct {
	Summary              *Summary        `json:"summary,omitempty"`
	MarketData           []MarketEntry   `json:"market_data,omitempty"`
	PriceForecast        []ForecastPoint `json:"price_forecast,omitempty"`
	PriceForecastComment string          `json:"price_forecast_comment,omitempty"`
	Recommendation       *Recommendation `json:"recommendation,omitempty"`
	YieldOutlook         *YieldOutlook   `json:"yield_outlook,omitempty"`
	MarketSentiment      *Sentiment      `json:"market_sentiment,omitempty"`
	OptimalMarket        *OptimalMarket  `json:"optimal_market,omitempty"`
	AISummary            string          `json:"ai_summary,omitempty"`
	AIReason             string          `json:"ai_reason,omitempty"`
	Location             string          `json:"location,omitempty"`
}

// Summary is the headline commodity/price pair shown in the banner.
type Summary struct {
	Commodity    string  `json:"commodity"`
	AveragePrice float64 `json:"average_price"`
}

// MarketEntry is one row of the sample-markets table.
type MarketEntry struct {
	Market     string   `json:"market"`
	State      string   `json:"state"`
	Variety    string   `json:"variety"`
	ModalPrice *float64 `json:"modal_price"`
	Unit       string   `json:"unit"`
}

// ForecastPoint is one step of the price forecast series.
type ForecastPoint struct {
	Date          string  `json:"date"`
	ForecastPrice float64 `json:"forecast_price"`
}

// Recommendation is the backend's BUY/SELL/HOLD call.
//
// Confidence is a pointer so that an explicit 0 from the backend is
// distinguishable from an absent field (which gets a display default).
type Recommendation struct {
	Action     string   `json:"action"`
	Confidence *float64 `json:"confidence"`
	Reason     string   `json:"reason"`
}

// YieldOutlook is the nation-wide yield estimate.
type YieldOutlook struct {
	ChangePercent string   `json:"change_percent"`
	Factors       []string `json:"factors"`
}

// Sentiment summarizes market mood from news/keyword analysis.
type Sentiment struct {
	Overall  string   `json:"overall"`
	Keywords []string `json:"keywords"`
}

// OptimalMarket ranks markets for selling high and buying low.
type OptimalMarket struct {
	SellHigh []RankedMarket `json:"sell_high"`
	BuyLow   []RankedMarket `json:"buy_low"`
}

// RankedMarket is one entry of a ranked market list.
type RankedMarket struct {
	Market string  `json:"market"`
	State  string  `json:"state"`
	Price  float64 `json:"price"`
}

// QueryParameters is the committed analytics query: one compound request is
// keyed by all three axes. The client is the source of truth for what was
// requested; the backend does not echo these back.
type QueryParameters struct {
	Commodity   string `json:"commodity"`
	Location    string `json:"location"`
	HorizonDays int    `json:"horizon_days"`
}
