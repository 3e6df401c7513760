package coingeckoadapter

import (
    "context"
    "math"
    "time"

    "github.com/shopspring/decimal"

    "assettracker/internal/market"
    "assettracker/internal/provider"
    "assettracker/internal/provider/coingecko"
)

// PricesClient is the slice of the CoinGecko API client the adapter needs.
type PricesClient interface {
    SimplePrice(ctx context.Context, ids []string, vsCurrencies []string, opts ...coingecko.CoinGeckoAPIClientOption) ([]coingecko.CoinPrice, error)
}

type Config struct {
    Name     string            // display name, default: CoinGecko
    Currency string            // vs-currency, default: usd
    IDMap    map[string]string // watch-list symbol -> CoinGecko coin id
}

// Adapter translates CoinGecko simple/price payloads into the normalized
// quote shape: one quote per requested asset, in request order, with
// missing or invalid prices reported as StatusUnavailable.
type Adapter struct {
    cfg    Config
    client PricesClient
}

func New(cfg Config, client PricesClient) *Adapter {
    if cfg.Name == "" { cfg.Name = "CoinGecko" }
    if cfg.Currency == "" { cfg.Currency = "usd" }
    if cfg.IDMap == nil { cfg.IDMap = DefaultIDMap() }
    return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string { return a.cfg.Name }

func (a *Adapter) Fetch(ctx context.Context, assets []market.Asset) ([]market.Quote, error) {
    ids := make([]string, 0, len(assets))
    for _, asset := range assets {
        if id := a.cfg.IDMap[asset.Symbol]; id != "" {
            ids = append(ids, id)
        }
    }

    coins, err := a.client.SimplePrice(ctx, ids, []string{a.cfg.Currency})
    if err != nil {
        return nil, provider.NewError(a.cfg.Name, err)
    }

    byID := make(map[string]coingecko.CoinPrice, len(coins))
    for _, c := range coins {
        byID[c.ID] = c
    }

    now := time.Now().UTC()
    out := make([]market.Quote, 0, len(assets))
    for _, asset := range assets {
        id := a.cfg.IDMap[asset.Symbol]
        coin, ok := byID[id]
        if id == "" || !ok {
            out = append(out, market.Unavailable(asset, now))
            continue
        }
        p := coin.Prices[a.cfg.Currency]
        if p == nil || !validPrice(*p) {
            out = append(out, market.Unavailable(asset, now))
            continue
        }
        out = append(out, market.Ok(asset, decimal.NewFromFloat(*p), now))
    }
    return out, nil
}

// validPrice rejects non-finite and negative values at the boundary.
func validPrice(v float64) bool {
    return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// DefaultIDMap maps the fixed crypto watch-list symbols to CoinGecko
// coin ids.
func DefaultIDMap() map[string]string {
    return map[string]string{
        "BTC":  "bitcoin",
        "ETH":  "ethereum",
        "USDT": "tether",
        "XRP":  "ripple",
        "BNB":  "binancecoin",
        "SOL":  "solana",
        "USDC": "usd-coin",
        "DOGE": "dogecoin",
        "ADA":  "cardano",
        "TRX":  "tron",
        "AVAX": "avalanche-2",
        "LINK": "chainlink",
        "TON":  "the-open-network",
        "SHIB": "shiba-inu",
        "XLM":  "stellar",
        "DOT":  "polkadot",
        "BCH":  "bitcoin-cash",
        "LTC":  "litecoin",
        "UNI":  "uniswap",
        "NEAR": "near",
    }
}
