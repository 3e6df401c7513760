package display

import (
    "context"
    "sync"

    "assettracker/internal/market"
)

// Renderer consumes one completed refresh and updates on-screen state.
// Implementations must tolerate PartialFailure results and render
// Unavailable entries distinctly instead of omitting rows.
type Renderer interface {
    Render(result market.RefreshResult)
}

// Refresher is the pipeline the dispatcher drives.
type Refresher interface {
    Refresh(ctx context.Context) market.RefreshResult
}

// Dispatcher wires the trigger boundary to the refresh pipeline without
// blocking the caller: each request runs on its own goroutine and the
// completed result is handed to the renderer. When refreshes overlap,
// results are applied last-writer-wins by CompletedAt; a stale result
// arriving after a newer one has been rendered is discarded here, not in
// the aggregator, which stays stateless.
type Dispatcher struct {
    refresher Refresher
    renderer  Renderer

    mu          sync.Mutex
    lastApplied market.RefreshResult
    applied     bool

    wg sync.WaitGroup
}

func NewDispatcher(r Refresher, out Renderer) *Dispatcher {
    return &Dispatcher{refresher: r, renderer: out}
}

// OnRefreshRequested dispatches one refresh in the background. It returns
// immediately; the result reaches the renderer when the pipeline completes.
func (d *Dispatcher) OnRefreshRequested(ctx context.Context) {
    d.wg.Add(1)
    go func() {
        defer d.wg.Done()
        d.apply(d.refresher.Refresh(ctx))
    }()
}

// apply renders result unless a newer one has already been applied.
func (d *Dispatcher) apply(result market.RefreshResult) bool {
    d.mu.Lock()
    defer d.mu.Unlock()
    if d.applied && result.CompletedAt.Before(d.lastApplied.CompletedAt) {
        return false
    }
    d.lastApplied = result
    d.applied = true
    d.renderer.Render(result)
    return true
}

// Wait blocks until all dispatched refreshes have completed.
func (d *Dispatcher) Wait() { d.wg.Wait() }
