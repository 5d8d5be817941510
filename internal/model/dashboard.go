package model

// Dashboard matches the JSON shape of the /dashboard response. Like the
// terminal payload, every field is optional.
type Dashboard struct {
	Weather       *Weather      `json:"weather,omitempty"`
	AISummary     string        `json:"ai_summary,omitempty"`
	AICropInsight string        `json:"ai_crop_insight,omitempty"`
	CropInsights  []CropInsight `json:"ai_crop_insights,omitempty"`
	MarketPrices  []PriceRange  `json:"market_prices,omitempty"`
	News          []NewsItem    `json:"news,omitempty"`
	Location      string        `json:"location,omitempty"`
}

// Weather groups the current conditions, the day forecast and astro times.
type Weather struct {
	Current  *CurrentWeather `json:"current,omitempty"`
	Forecast []ForecastDay   `json:"forecast,omitempty"`
	Astro    *Astro          `json:"astro,omitempty"`
}

// CurrentWeather holds the present conditions for the selected city.
// Scalars are pointers so missing values can render as placeholders.
type CurrentWeather struct {
	TempC     *float64 `json:"temp_c"`
	Condition string   `json:"condition"`
	Icon      string   `json:"icon"`
	Humidity  *float64 `json:"humidity"`
	WindKph   *float64 `json:"wind_kph"`
}

// ForecastDay is one card of the forecast carousel.
type ForecastDay struct {
	Date              string  `json:"date"`
	Icon              string  `json:"icon"`
	AvgTempC          float64 `json:"avgtemp_c"`
	Condition         string  `json:"condition"`
	DailyChanceOfRain float64 `json:"daily_chance_of_rain"`
}

// Astro holds sunrise/sunset times as formatted strings.
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// CropInsight is one AI-scored crop suggestion.
type CropInsight struct {
	Crop       string  `json:"crop"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// PriceRange is the min/modal/max price spread for one market.
type PriceRange struct {
	Market     string  `json:"market"`
	MinPrice   float64 `json:"min_price"`
	ModalPrice float64 `json:"modal_price"`
	MaxPrice   float64 `json:"max_price"`
}

// NewsItem is one agriculture news card.
type NewsItem struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}
