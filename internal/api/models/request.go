package models

// TextRequest carries a single text input (commodity, location or city).
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

// HorizonRequest sets the harvest horizon slider value.
type HorizonRequest struct {
	Days int `json:"days"`
}

// TradeParamsRequest partially updates the trade simulation form. Pointer
// fields distinguish "leave unchanged" from an explicit zero value.
type TradeParamsRequest struct {
	Commodity   *string  `json:"commodity,omitempty"`
	Source      *string  `json:"source,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	QtyTonnes   *float64 `json:"qty_tonnes,omitempty"`
	Domestic    *bool    `json:"domestic,omitempty"`
}
