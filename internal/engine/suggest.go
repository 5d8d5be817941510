package engine

// maybeSuggestDestination fills in a default trade destination from the port
// catalog. It runs only on a genuine change of the source or the catalog, and
// it is idempotent: once a destination is set (by the user or by a previous
// pass) it never fires again until the destination is cleared.
//
// Rules:
//   - requires a non-empty source and at least two catalog ports
//   - never overwrites a non-empty destination
//   - never picks the source as its own destination
//   - a single remaining candidate is chosen deterministically
//
// Caller must hold e.mu.
func (e *Engine) maybeSuggestDestination() {
	if e.tradeParams.Source == "" || e.tradeParams.Destination != "" {
		return
	}
	if e.catalog.Data == nil || len(e.catalog.Data.Ports) <= 1 {
		return
	}
	candidates := make([]string, 0, len(e.catalog.Data.Ports))
	for _, port := range e.catalog.Data.Ports {
		if port != e.tradeParams.Source {
			candidates = append(candidates, port)
		}
	}
	if len(candidates) == 0 {
		return
	}
	e.tradeParams.Destination = candidates[e.intn(len(candidates))]
}
