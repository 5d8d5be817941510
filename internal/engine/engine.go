package engine

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"agripulse-terminal/internal/data"
	"agripulse-terminal/internal/model"
)

// Backend is the slice of the remote AgriPulse API the engine depends on.
// *data.Client satisfies it; tests substitute a fake.
type Backend interface {
	FetchTerminal(ctx context.Context, q data.TerminalQuery) (*model.AnalyticsResult, error)
	FetchDashboard(ctx context.Context, location string) (*model.Dashboard, error)
	FetchInternationalOptions(ctx context.Context) (*model.OptionCatalog, error)
	SimulateTrade(ctx context.Context, q data.TradeQuery) (*model.TradeResult, error)
}

const (
	genericFetchError    = "Failed to fetch data"
	genericSimulateError = "Simulation failed, please try again."

	minHorizonDays = 0
	maxHorizonDays = 120
)

// Engine owns the query parameters and the per-query request states, and
// coordinates the asynchronous fetches against the backend.
//
// All state lives behind one mutex. Fetches run in goroutines; each issued
// request carries a monotonically increasing sequence number per query type,
// and a completion is applied only if its sequence number is still the latest
// for that query type. Responses to superseded requests are discarded, so an
// older request resolving after a newer one can never clobber its result.
type Engine struct {
	mu      sync.Mutex
	backend Backend
	ctx     context.Context
	timeout time.Duration
	intn    func(n int) int

	params         model.QueryParameters
	commodityDraft string
	locationDraft  string
	dashboardCity  string
	dashboardDraft string
	tradeParams    model.TradeParameters

	analyticsSeq uint64
	dashboardSeq uint64
	tradeSeq     uint64

	catalogRequested bool

	analytics RequestState[model.AnalyticsResult]
	dashboard RequestState[model.Dashboard]
	catalog   RequestState[model.OptionCatalog]
	trade     RequestState[model.TradeResult]
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the per-request timeout for backend calls.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithRand injects the random source used for destination suggestions,
// so tests can pin the pick deterministically.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.intn = r.Intn }
}

// WithContext sets the base context fetches are derived from. Cancelling it
// abandons all in-flight requests.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// WithQueryDefaults seeds the committed analytics query.
func WithQueryDefaults(p model.QueryParameters) Option {
	return func(e *Engine) {
		e.params = p
		e.commodityDraft = p.Commodity
		e.locationDraft = p.Location
	}
}

// WithTradeDefaults seeds the trade simulation form.
func WithTradeDefaults(p model.TradeParameters) Option {
	return func(e *Engine) { e.tradeParams = p }
}

// WithDashboardCity seeds the dashboard city.
func WithDashboardCity(city string) Option {
	return func(e *Engine) {
		e.dashboardCity = city
		e.dashboardDraft = city
	}
}

// New creates an engine around a backend. Without options it starts with the
// stock defaults: wheat in Indore at a 53-day horizon, and a Wheat shipment
// from Mumbai Port.
func New(backend Backend, opts ...Option) *Engine {
	e := &Engine{
		backend: backend,
		ctx:     context.Background(),
		timeout: 30 * time.Second,
		intn:    rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
		params: model.QueryParameters{
			Commodity:   "wheat",
			Location:    "Indore",
			HorizonDays: 53,
		},
		tradeParams: model.TradeParameters{
			Commodity:   "Wheat",
			Source:      "Mumbai Port",
			Destination: "Novorossiysk",
			QtyTonnes:   20,
			Domestic:    false,
		},
		dashboardCity: "Bhopal",
		analytics:     Idle[model.AnalyticsResult](),
		dashboard:     Idle[model.Dashboard](),
		catalog:       Idle[model.OptionCatalog](),
		trade:         Idle[model.TradeResult](),
	}
	e.commodityDraft = e.params.Commodity
	e.locationDraft = e.params.Location
	e.dashboardDraft = e.dashboardCity
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init runs the mount-time fetches: the initial analytics query, the one-shot
// option catalog load, and the initial dashboard query. The three requests are
// independent and run concurrently.
func (e *Engine) Init() {
	e.Generate()
	e.LoadCatalog()
	e.RefreshDashboard()
}

// SetCommodityDraft records transient commodity input text. Drafts do not
// change the committed query and never trigger a fetch.
func (e *Engine) SetCommodityDraft(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commodityDraft = text
}

// SetLocationDraft records transient location input text.
func (e *Engine) SetLocationDraft(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locationDraft = text
}

// SubmitCommodity trims and lower-cases the text, commits it as the query
// commodity and issues a fetch with the new snapshot. Empty (after trimming)
// input is a no-op and does not trigger a fetch. Reports whether a fetch was
// issued.
func (e *Engine) SubmitCommodity(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commodityDraft = text
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	e.params.Commodity = strings.ToLower(trimmed)
	e.startAnalytics()
	return true
}

// SubmitLocation commits a trimmed location and issues a fetch. Empty input
// is a no-op. Reports whether a fetch was issued.
func (e *Engine) SubmitLocation(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locationDraft = text
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	e.params.Location = trimmed
	e.startAnalytics()
	return true
}

// SetHorizon commits a harvest horizon, clamped to [0,120] days. Slider
// semantics: committing the horizon does not itself fetch; Generate does.
func (e *Engine) SetHorizon(days int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if days < minHorizonDays {
		days = minHorizonDays
	}
	if days > maxHorizonDays {
		days = maxHorizonDays
	}
	e.params.HorizonDays = days
}

// Generate issues the analytics fetch with the current committed snapshot,
// whether or not any axis changed. This is the manual-refresh path.
func (e *Engine) Generate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startAnalytics()
}

// startAnalytics snapshots the committed parameters and launches the fetch.
// Caller must hold e.mu.
func (e *Engine) startAnalytics() {
	q := data.TerminalQuery{
		Commodity:   e.params.Commodity,
		HarvestDays: e.params.HorizonDays,
		Location:    e.params.Location,
	}
	e.analyticsSeq++
	seq := e.analyticsSeq
	e.analytics = Loading[model.AnalyticsResult]()

	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.timeout)
		defer cancel()
		res, err := e.backend.FetchTerminal(ctx, q)

		e.mu.Lock()
		defer e.mu.Unlock()
		if seq != e.analyticsSeq {
			log.Printf("[Engine] Discarding stale analytics response (seq=%d, latest=%d)", seq, e.analyticsSeq)
			return
		}
		if err != nil {
			e.analytics = Failed[model.AnalyticsResult](errorMessage(err, genericFetchError))
			return
		}
		e.analytics = Succeeded(res)
	}()
}

// SetDashboardDraft records transient dashboard city input text.
func (e *Engine) SetDashboardDraft(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dashboardDraft = text
}

// SubmitDashboardCity commits a trimmed city and fetches the dashboard for
// it. Empty input is a no-op. Reports whether a fetch was issued.
func (e *Engine) SubmitDashboardCity(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dashboardDraft = text
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	e.dashboardCity = trimmed
	e.startDashboard()
	return true
}

// RefreshDashboard re-fetches the dashboard for the committed city.
func (e *Engine) RefreshDashboard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startDashboard()
}

// startDashboard launches the dashboard fetch. Caller must hold e.mu.
func (e *Engine) startDashboard() {
	city := e.dashboardCity
	e.dashboardSeq++
	seq := e.dashboardSeq
	e.dashboard = Loading[model.Dashboard]()

	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.timeout)
		defer cancel()
		res, err := e.backend.FetchDashboard(ctx, city)

		e.mu.Lock()
		defer e.mu.Unlock()
		if seq != e.dashboardSeq {
			log.Printf("[Engine] Discarding stale dashboard response (seq=%d, latest=%d)", seq, e.dashboardSeq)
			return
		}
		if err != nil {
			e.dashboard = Failed[model.Dashboard](errorMessage(err, genericFetchError))
			return
		}
		e.dashboard = Succeeded(res)
	}()
}

// LoadCatalog fetches the international options catalog. The catalog is
// loaded at most once per session; repeat calls are no-ops. Failure is logged
// and swallowed: the catalog only powers auto-suggestion, and its absence
// must never block manual trade simulation.
func (e *Engine) LoadCatalog() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.catalogRequested {
		return
	}
	e.catalogRequested = true
	e.catalog = Loading[model.OptionCatalog]()

	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.timeout)
		defer cancel()
		cat, err := e.backend.FetchInternationalOptions(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		if err != nil {
			log.Printf("[Engine] Failed to load international options: %v", err)
			e.catalog = Failed[model.OptionCatalog](errorMessage(err, genericFetchError))
			return
		}
		e.catalog = Succeeded(cat)
		// Catalog identity changed: one suggestion pass.
		e.maybeSuggestDestination()
	}()
}

// SetTradeCommodity sets the simulation commodity.
func (e *Engine) SetTradeCommodity(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tradeParams.Commodity = text
}

// SetTradeSource sets the simulation source. A genuine source change (not a
// re-set of the same value) triggers one destination-suggestion pass.
func (e *Engine) SetTradeSource(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if text == e.tradeParams.Source {
		return
	}
	e.tradeParams.Source = text
	e.maybeSuggestDestination()
}

// SetTradeDestination sets the simulation destination. A non-empty value here
// is user intent and is never overwritten by the suggester.
func (e *Engine) SetTradeDestination(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tradeParams.Destination = text
}

// SetTradeQty sets the shipment quantity in tonnes. Non-positive values are
// ignored; the input widget constrains this on the happy path.
func (e *Engine) SetTradeQty(tonnes float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tonnes <= 0 {
		return
	}
	e.tradeParams.QtyTonnes = tonnes
}

// SetTradeDomestic toggles domestic-vs-international mode.
func (e *Engine) SetTradeDomestic(domestic bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tradeParams.Domestic = domestic
}

// RunSimulation launches a trade simulation with the current form state. The
// prior result is cleared immediately. Starting a new run while one is in
// flight is allowed; the superseded run's response is discarded when it
// arrives, so the latest-issued run always wins.
func (e *Engine) RunSimulation() {
	e.mu.Lock()
	defer e.mu.Unlock()

	q := data.TradeQuery{
		Commodity:   e.tradeParams.Commodity,
		Source:      e.tradeParams.Source,
		Destination: e.tradeParams.Destination,
		QtyTonnes:   e.tradeParams.QtyTonnes,
		Domestic:    e.tradeParams.Domestic,
	}
	e.tradeSeq++
	seq := e.tradeSeq
	e.trade = Loading[model.TradeResult]()

	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.timeout)
		defer cancel()
		res, err := e.backend.SimulateTrade(ctx, q)

		e.mu.Lock()
		defer e.mu.Unlock()
		if seq != e.tradeSeq {
			log.Printf("[Engine] Discarding stale simulation response (seq=%d, latest=%d)", seq, e.tradeSeq)
			return
		}
		if err != nil {
			e.trade = Failed[model.TradeResult](errorMessage(err, genericSimulateError))
			return
		}
		// A populated res.Error is a business-level outcome, stored as data.
		e.trade = Succeeded(res)
	}()
}

// Snapshot is a point-in-time copy of everything the engine exposes to
// presentation collaborators. Payload pointers inside the request states are
// shared and must be treated as read-only.
type Snapshot struct {
	Params         model.QueryParameters               `json:"params"`
	CommodityDraft string                              `json:"commodity_draft"`
	LocationDraft  string                              `json:"location_draft"`
	DashboardCity  string                              `json:"dashboard_city"`
	DashboardDraft string                              `json:"dashboard_draft"`
	TradeParams    model.TradeParameters               `json:"trade_params"`
	Analytics      RequestState[model.AnalyticsResult] `json:"analytics"`
	Dashboard      RequestState[model.Dashboard]       `json:"dashboard"`
	Catalog        RequestState[model.OptionCatalog]   `json:"catalog"`
	Trade          RequestState[model.TradeResult]     `json:"trade"`
}

// Options returns the loaded catalog, or the empty-lists default when the
// catalog has not loaded (or failed to).
func (s Snapshot) Options() model.OptionCatalog {
	if s.Catalog.Data != nil {
		return *s.Catalog.Data
	}
	return model.OptionCatalog{Commodities: []string{}, Ports: []string{}}
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Params:         e.params,
		CommodityDraft: e.commodityDraft,
		LocationDraft:  e.locationDraft,
		DashboardCity:  e.dashboardCity,
		DashboardDraft: e.dashboardDraft,
		TradeParams:    e.tradeParams,
		Analytics:      e.analytics,
		Dashboard:      e.dashboard,
		Catalog:        e.catalog,
		Trade:          e.trade,
	}
}

// errorMessage resolves a fetch error to the message surfaced to the user:
// the backend's structured detail when present, then a timeout-specific
// message, then the transport error text, then a generic fallback.
func errorMessage(err error, generic string) string {
	var apiErr *data.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return generic
}
