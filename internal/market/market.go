package market

import (
    "time"

    "github.com/shopspring/decimal"
)

// Kind classifies a watched asset.
type Kind string

const (
    KindCrypto Kind = "crypto"
    KindFiat   Kind = "fiat"
)

// Asset identifies one tradable instrument on the watch-list.
// Assets are immutable; the full set is fixed at process start.
type Asset struct {
    Symbol      string `json:"symbol"`
    DisplayName string `json:"display_name"`
    Kind        Kind   `json:"kind"`
}

// Status reports whether a quote carries a usable price.
type Status string

const (
    StatusOk          Status = "ok"
    StatusUnavailable Status = "unavailable"
)

// Quote is one asset priced against USD as of one refresh.
// Quotes are created fresh per refresh and never mutated; the next
// refresh supersedes them with new values.
type Quote struct {
    Asset     Asset           `json:"asset"`
    PriceUSD  decimal.Decimal `json:"price_usd"`
    FetchedAt time.Time       `json:"fetched_at"`
    Status    Status          `json:"status"`
}

// Ok builds a quote carrying a usable price.
func Ok(a Asset, price decimal.Decimal, at time.Time) Quote {
    return Quote{Asset: a, PriceUSD: price, FetchedAt: at, Status: StatusOk}
}

// Unavailable builds a placeholder quote for an asset the provider
// could not price. The price is left at zero and must not be read.
func Unavailable(a Asset, at time.Time) Quote {
    return Quote{Asset: a, FetchedAt: at, Status: StatusUnavailable}
}

// RefreshResult is the full outcome of one refresh cycle.
// Quotes holds exactly one entry per watched asset, in watch-list order
// (crypto block first, then fiat), regardless of provider outcomes:
// missing data shows up as StatusUnavailable, never as a missing row.
type RefreshResult struct {
    Quotes         []Quote   `json:"quotes"`
    PartialFailure bool      `json:"partial_failure"`
    CompletedAt    time.Time `json:"completed_at"`
}
