package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agripulse-terminal/internal/model"
)

func TestFetchTerminalQueryEncoding(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"commodity":    r.URL.Query().Get("commodity"),
			"harvest_days": r.URL.Query().Get("harvest_days"),
			"location":     r.URL.Query().Get("location"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary": {"commodity": "wheat", "average_price": 2150.5}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.FetchTerminal(context.Background(), TerminalQuery{
		Commodity:   "wheat",
		HarvestDays: 53,
		Location:    "Indore",
	})
	if err != nil {
		t.Fatalf("FetchTerminal: %v", err)
	}

	if gotPath != "/terminal" {
		t.Errorf("path = %q, want /terminal", gotPath)
	}
	want := map[string]string{"commodity": "wheat", "harvest_days": "53", "location": "Indore"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if res.Summary == nil || res.Summary.AveragePrice != 2150.5 {
		t.Errorf("summary = %+v", res.Summary)
	}
}

func TestFetchTerminalValidation(t *testing.T) {
	client := NewClient("http://example.invalid")
	if _, err := client.FetchTerminal(context.Background(), TerminalQuery{Location: "Indore"}); err == nil {
		t.Error("missing commodity accepted")
	}
	if _, err := client.FetchTerminal(context.Background(), TerminalQuery{Commodity: "wheat"}); err == nil {
		t.Error("missing location accepted")
	}
}

func TestFetchTerminalStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Commodity not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchTerminal(context.Background(), TerminalQuery{
		Commodity: "unobtanium", HarvestDays: 10, Location: "Indore",
	})
	if err == nil {
		t.Fatal("expected error on 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", apiErr.Code)
	}
	if apiErr.Detail != "Commodity not found" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	if apiErr.Error() != "Commodity not found" {
		t.Errorf("Error() = %q, want the detail text", apiErr.Error())
	}
}

func TestFetchTerminalErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchTerminal(context.Background(), TerminalQuery{
		Commodity: "wheat", Location: "Indore",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "API_ERROR" {
		t.Errorf("Code = %q, want API_ERROR", apiErr.Code)
	}
	if apiErr.Error() != "API returned status 500" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestFetchDashboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("location"); got != "Bhopal" {
			t.Errorf("location = %q", got)
		}
		w.Write([]byte(`{"ai_summary": "Stable week ahead.", "location": "Bhopal"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.FetchDashboard(context.Background(), "Bhopal")
	if err != nil {
		t.Fatalf("FetchDashboard: %v", err)
	}
	if res.AISummary != "Stable week ahead." {
		t.Errorf("AISummary = %q", res.AISummary)
	}

	if _, err := client.FetchDashboard(context.Background(), ""); err == nil {
		t.Error("empty location accepted")
	}
}

func TestFetchInternationalOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/terminal/international-options" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"commodities": ["Wheat", "Rice"], "ports": ["Mumbai Port", "Rotterdam"]}`))
	}))
	defer srv.Close()

	cat, err := NewClient(srv.URL).FetchInternationalOptions(context.Background())
	if err != nil {
		t.Fatalf("FetchInternationalOptions: %v", err)
	}
	if len(cat.Commodities) != 2 || len(cat.Ports) != 2 {
		t.Errorf("catalog = %+v", cat)
	}
}

func TestSimulateTradeQueryEncoding(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"commodity":   r.URL.Query().Get("commodity"),
			"source":      r.URL.Query().Get("source"),
			"destination": r.URL.Query().Get("destination"),
			"qty_tonnes":  r.URL.Query().Get("qty_tonnes"),
			"domestic":    r.URL.Query().Get("domestic"),
		}
		w.Write([]byte(`{"commodity": "Wheat", "net_profit_inr": 125000, "profitable": true}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SimulateTrade(context.Background(), TradeQuery{
		Commodity:   "Wheat",
		Source:      "Mumbai Port",
		Destination: "Rotterdam",
		QtyTonnes:   20.5,
		Domestic:    false,
	})
	if err != nil {
		t.Fatalf("SimulateTrade: %v", err)
	}

	want := map[string]string{
		"commodity":   "Wheat",
		"source":      "Mumbai Port",
		"destination": "Rotterdam",
		"qty_tonnes":  "20.5",
		"domestic":    "false",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if !res.Profitable || res.NetProfitINR != 125000 {
		t.Errorf("result = %+v", res)
	}
}

func TestSimulateTradeBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with an error body is a business outcome, not a failure.
		w.Write([]byte(`{"error": "route not found"}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SimulateTrade(context.Background(), TradeQuery{
		Commodity: "Wheat", Source: "A", Destination: "B", QtyTonnes: 20,
	})
	if err != nil {
		t.Fatalf("SimulateTrade: %v", err)
	}
	if res.Error != "route not found" {
		t.Errorf("Error field = %q", res.Error)
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	c := NewClient("")
	if c.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
}

func TestGenerateCacheKey(t *testing.T) {
	a := GenerateCacheKey(TerminalQuery{Commodity: "wheat", HarvestDays: 53, Location: "Indore"})
	b := GenerateCacheKey(TerminalQuery{Commodity: "wheat", HarvestDays: 53, Location: "Indore"})
	c := GenerateCacheKey(TerminalQuery{Commodity: "wheat", HarvestDays: 54, Location: "Indore"})
	if a != b {
		t.Error("identical queries produced different keys")
	}
	if a == c {
		t.Error("distinct queries produced the same key")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}

func TestCacheDisabledByDefault(t *testing.T) {
	t.Setenv("ENABLE_TERMINAL_CACHE", "")
	if GetCache() != nil {
		t.Error("cache enabled without ENABLE_TERMINAL_CACHE=true")
	}

	t.Setenv("ENABLE_TERMINAL_CACHE", "true")
	t.Setenv("API_ENV", "production")
	if GetCache() != nil {
		t.Error("cache enabled in production")
	}
}

func TestResponseCacheRoundTrip(t *testing.T) {
	cache := &ResponseCache{store: make(map[string]*CacheEntry), ttl: time.Hour}
	key := GenerateCacheKey(TerminalQuery{Commodity: "wheat", HarvestDays: 53, Location: "Indore"})

	if _, found := cache.Get(key); found {
		t.Error("empty cache reported a hit")
	}

	want := &model.AnalyticsResult{AISummary: "hello"}
	cache.Set(key, want)
	got, found := cache.Get(key)
	if !found || got.AISummary != "hello" {
		t.Errorf("Get = %+v, %v", got, found)
	}

	cache.Clear()
	if _, found := cache.Get(key); found {
		t.Error("cleared cache reported a hit")
	}
}

func TestResponseCacheExpiry(t *testing.T) {
	cache := &ResponseCache{store: make(map[string]*CacheEntry), ttl: -time.Second}
	cache.Set("k", &model.AnalyticsResult{})
	if _, found := cache.Get("k"); found {
		t.Error("expired entry served")
	}
}
