package model

// TradeParameters is the point-to-point simulation form state. The destination
// may be filled in by the auto-suggester, but only while it is empty: a value
// the user typed is never overwritten.
type TradeParameters struct {
	Commodity   string  `json:"commodity"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	QtyTonnes   float64 `json:"qty_tonnes"`
	Domestic    bool    `json:"domestic"`
}

// TradeResult is the /terminal/simulate-trade response.
//
// A populated Error field is a business-level outcome (e.g. unknown port), not
// a transport failure: the backend answered, so the result is stored as data.
type TradeResult struct {
	Error                string  `json:"error,omitempty"`
	Commodity            string  `json:"commodity,omitempty"`
	Mode                 string  `json:"mode,omitempty"`
	DistanceKm           float64 `json:"distance_km,omitempty"`
	BuyPriceINRPerTonne  float64 `json:"buy_price_inr_per_tonne,omitempty"`
	SellPriceINRPerTonne float64 `json:"sell_price_inr_per_tonne,omitempty"`
	LogisticsCostINR     float64 `json:"logistics_cost_inr,omitempty"`
	NetProfitINR         float64 `json:"net_profit_inr,omitempty"`
	ROIPercent           float64 `json:"roi_percent,omitempty"`
	QtyTonnes            float64 `json:"qty_tonnes,omitempty"`
	Profitable           bool    `json:"profitable,omitempty"`
}

// OptionCatalog lists the valid international commodities and ports. Fetched
// once per session and immutable after load; it only powers auto-suggestion,
// never validation, so empty lists leave the trade form fully usable.
type OptionCatalog struct {
	Commodities []string `json:"commodities"`
	Ports       []string `json:"ports"`
}
