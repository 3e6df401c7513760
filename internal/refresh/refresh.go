package refresh

import (
    "context"
    "time"

    "github.com/sirupsen/logrus"
    "golang.org/x/sync/errgroup"

    "assettracker/internal/market"
    "assettracker/internal/provider"
)

// DefaultTimeout bounds each provider call when none is configured.
const DefaultTimeout = 10 * time.Second

// Refresher drives both provider adapters for one refresh cycle.
//
// Each call to Refresh is independent: no state is shared between calls and
// nothing is cached, so two sequential refreshes produce two independent
// results. A provider failure (including timeout) is contained to that
// provider's block of the watch-list and never aborts the other provider.
type Refresher struct {
    Crypto provider.Provider
    Fiat   provider.Provider

    CryptoAssets []market.Asset
    FiatAssets   []market.Asset

    // Timeout bounds each provider call separately. Zero means DefaultTimeout.
    Timeout time.Duration

    Log *logrus.Logger
}

// New returns a Refresher over the fixed watch-lists.
func New(crypto, fiat provider.Provider) *Refresher {
    return &Refresher{
        Crypto:       crypto,
        Fiat:         fiat,
        CryptoAssets: market.CryptoWatchlist(),
        FiatAssets:   market.FiatWatchlist(),
        Timeout:      DefaultTimeout,
        Log:          logrus.StandardLogger(),
    }
}

// Refresh fetches current quotes for the whole watch-list and assembles one
// RefreshResult: crypto block first, then fiat, one quote per asset in fixed
// order. It never returns an error; total provider unavailability simply
// yields a result where every quote is StatusUnavailable.
func (r *Refresher) Refresh(ctx context.Context) market.RefreshResult {
    groups := []struct {
        p      provider.Provider
        assets []market.Asset
    }{
        {r.Crypto, r.CryptoAssets},
        {r.Fiat, r.FiatAssets},
    }

    blocks := make([][]market.Quote, len(groups))
    var g errgroup.Group
    for i, grp := range groups {
        g.Go(func() error {
            blocks[i] = r.fetchBlock(ctx, grp.p, grp.assets)
            return nil
        })
    }
    _ = g.Wait()

    quotes := make([]market.Quote, 0, len(r.CryptoAssets)+len(r.FiatAssets))
    partial := false
    for _, block := range blocks {
        for _, q := range block {
            if q.Status == market.StatusUnavailable {
                partial = true
            }
            quotes = append(quotes, q)
        }
    }

    return market.RefreshResult{
        Quotes:         quotes,
        PartialFailure: partial,
        CompletedAt:    time.Now().UTC(),
    }
}

// fetchBlock runs one provider call bounded by the configured timeout and
// converts total failure into an all-Unavailable block.
func (r *Refresher) fetchBlock(ctx context.Context, p provider.Provider, assets []market.Asset) []market.Quote {
    now := time.Now().UTC()
    if p == nil {
        return unavailableBlock(assets, now)
    }

    timeout := r.Timeout
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    fctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()

    quotes, err := p.Fetch(fctx, assets)
    if err != nil {
        r.log().WithField("provider", p.Name()).Warnf("fetch failed: %v", err)
        return unavailableBlock(assets, time.Now().UTC())
    }
    return align(assets, quotes)
}

// align enforces the one-quote-per-asset invariant against the adapter's
// output: quotes come back in watch-list order and assets the adapter did
// not report on become Unavailable.
func align(assets []market.Asset, quotes []market.Quote) []market.Quote {
    bySymbol := make(map[string]market.Quote, len(quotes))
    for _, q := range quotes {
        if _, ok := bySymbol[q.Asset.Symbol]; !ok {
            bySymbol[q.Asset.Symbol] = q
        }
    }

    now := time.Now().UTC()
    out := make([]market.Quote, 0, len(assets))
    for _, a := range assets {
        q, ok := bySymbol[a.Symbol]
        if !ok {
            out = append(out, market.Unavailable(a, now))
            continue
        }
        q.Asset = a
        out = append(out, q)
    }
    return out
}

func unavailableBlock(assets []market.Asset, at time.Time) []market.Quote {
    out := make([]market.Quote, 0, len(assets))
    for _, a := range assets {
        out = append(out, market.Unavailable(a, at))
    }
    return out
}

func (r *Refresher) log() *logrus.Logger {
    if r.Log != nil {
        return r.Log
    }
    return logrus.StandardLogger()
}
