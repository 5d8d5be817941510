package view

import (
	"fmt"
	"testing"

	"agripulse-terminal/internal/model"
)

func TestBuildDashboardDefaults(t *testing.T) {
	for _, d := range []*model.Dashboard{nil, {}} {
		v := BuildDashboard(d)
		if v.TempC != "--" || v.Humidity != "--" || v.WindKph != "--" {
			t.Errorf("current weather placeholders: %q/%q/%q", v.TempC, v.Humidity, v.WindKph)
		}
		if v.Sunrise != "--" || v.Sunset != "--" {
			t.Errorf("astro placeholders: %q/%q", v.Sunrise, v.Sunset)
		}
		if v.CropInsight != "AI insight not available right now." {
			t.Errorf("CropInsight = %q", v.CropInsight)
		}
		if len(v.Forecast) != 0 || len(v.MarketChart) != 0 || len(v.News) != 0 {
			t.Errorf("lists not empty")
		}
	}
}

func TestBuildDashboardValues(t *testing.T) {
	temp, humidity, wind := 31.5, 48.0, 12.0
	v := BuildDashboard(&model.Dashboard{
		Weather: &model.Weather{
			Current: &model.CurrentWeather{
				TempC:     &temp,
				Condition: "Partly cloudy",
				Humidity:  &humidity,
				WindKph:   &wind,
			},
			Astro: &model.Astro{Sunrise: "06:02 AM", Sunset: "06:41 PM"},
		},
		AICropInsight: "Sow early.",
	})
	if v.TempC != "31.5" {
		t.Errorf("TempC = %q, want %q", v.TempC, "31.5")
	}
	if v.Condition != "Partly cloudy" {
		t.Errorf("Condition = %q", v.Condition)
	}
	if v.Sunrise != "06:02 AM" || v.Sunset != "06:41 PM" {
		t.Errorf("astro = %q/%q", v.Sunrise, v.Sunset)
	}
	if v.CropInsight != "Sow early." {
		t.Errorf("CropInsight = %q", v.CropInsight)
	}
}

func TestBuildDashboardChartTruncation(t *testing.T) {
	prices := make([]model.PriceRange, 12)
	for i := range prices {
		prices[i] = model.PriceRange{Market: fmt.Sprintf("m%d", i)}
	}
	v := BuildDashboard(&model.Dashboard{MarketPrices: prices})
	if len(v.MarketChart) != 8 {
		t.Errorf("len(MarketChart) = %d, want 8", len(v.MarketChart))
	}
	if v.MarketChart[0].Market != "m0" {
		t.Errorf("order not preserved: %q", v.MarketChart[0].Market)
	}
}
