package view

import (
	"fmt"

	"agripulse-terminal/internal/model"
)

// The dashboard chart plots at most eight markets.
const maxChartMarkets = 8

const (
	placeholder        = "--"
	defaultCropInsight = "AI insight not available right now."
)

// DashboardView is the display-ready projection of a Dashboard payload.
type DashboardView struct {
	TempC     string `json:"temp_c"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
	Humidity  string `json:"humidity"`
	WindKph   string `json:"wind_kph"`
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`

	Forecast []model.ForecastDay `json:"forecast"`

	AISummary    string              `json:"ai_summary"`
	CropInsight  string              `json:"crop_insight"`
	CropInsights []model.CropInsight `json:"crop_insights"`

	MarketChart []model.PriceRange `json:"market_chart"`
	News        []model.NewsItem   `json:"news"`
}

// BuildDashboard derives the dashboard view, defaulting every absent field.
// Pure and total like BuildTerminal.
func BuildDashboard(d *model.Dashboard) DashboardView {
	if d == nil {
		d = &model.Dashboard{}
	}

	v := DashboardView{
		TempC:       placeholder,
		Condition:   "",
		Humidity:    placeholder,
		WindKph:     placeholder,
		Sunrise:     placeholder,
		Sunset:      placeholder,
		AISummary:   d.AISummary,
		CropInsight: firstNonEmpty(d.AICropInsight, defaultCropInsight),
	}

	if d.Weather != nil {
		if cur := d.Weather.Current; cur != nil {
			v.TempC = formatMetric(cur.TempC)
			v.Condition = cur.Condition
			v.Icon = cur.Icon
			v.Humidity = formatMetric(cur.Humidity)
			v.WindKph = formatMetric(cur.WindKph)
		}
		if astro := d.Weather.Astro; astro != nil {
			v.Sunrise = firstNonEmpty(astro.Sunrise, placeholder)
			v.Sunset = firstNonEmpty(astro.Sunset, placeholder)
		}
		v.Forecast = d.Weather.Forecast
	}
	if v.Forecast == nil {
		v.Forecast = []model.ForecastDay{}
	}

	v.CropInsights = d.CropInsights
	if v.CropInsights == nil {
		v.CropInsights = []model.CropInsight{}
	}

	v.MarketChart = d.MarketPrices
	if len(v.MarketChart) > maxChartMarkets {
		v.MarketChart = v.MarketChart[:maxChartMarkets]
	}
	if v.MarketChart == nil {
		v.MarketChart = []model.PriceRange{}
	}

	v.News = d.News
	if v.News == nil {
		v.News = []model.NewsItem{}
	}

	return v
}

func formatMetric(val *float64) string {
	if val == nil {
		return placeholder
	}
	return fmt.Sprintf("%g", *val)
}
