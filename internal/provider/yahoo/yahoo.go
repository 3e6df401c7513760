package yahoo

import (
    "context"
    "encoding/json"
    "fmt"
    "math"
    "net/http"
    "strings"
    "time"

    "github.com/shopspring/decimal"

    "assettracker/internal/httpx"
    "assettracker/internal/market"
    "assettracker/internal/provider"
)

type Config struct {
    Name string
    URL  string
    // Base is the quote currency every rate is converted into.
    Base string
    // Headers are sent with each request (e.g. a crumb cookie header).
    Headers map[string]string
}

// Provider fetches fiat FX rates from a Yahoo-Finance-style quote endpoint.
// Each watch-list currency C is requested as the pair CUSD=X together with
// its inverse USDC=X in the same batch; when only the inverse trades, the
// rate is derived as 1/inverse so every quote means "USD value of 1 C".
type Provider struct {
    cfg    Config
    client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
    if cfg.Name == "" { cfg.Name = "YahooFinance" }
    if cfg.URL == "" { cfg.URL = "https://query1.finance.yahoo.com/v7/finance/quote" }
    if cfg.Base == "" { cfg.Base = "USD" }
    return &Provider{cfg: cfg, client: hc}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) Fetch(ctx context.Context, assets []market.Asset) ([]market.Quote, error) {
    tickers := make([]string, 0, len(assets)*2)
    for _, a := range assets {
        tickers = append(tickers, directTicker(a.Symbol, p.cfg.Base), inverseTicker(a.Symbol, p.cfg.Base))
    }

    url := fmt.Sprintf("%s?symbols=%s", p.cfg.URL, strings.Join(tickers, ","))
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
    if err != nil {
        return nil, provider.NewError(p.cfg.Name, err)
    }
    for k, v := range p.cfg.Headers { req.Header.Set(k, v) }
    resp, err := p.client.Do(ctx, req)
    if err != nil {
        return nil, provider.NewError(p.cfg.Name, err)
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return nil, provider.NewError(p.cfg.Name, fmt.Errorf("GET %s -> %d", p.cfg.URL, resp.StatusCode))
    }

    var api apiResponse
    dec := json.NewDecoder(resp.Body)
    dec.UseNumber()
    if err := dec.Decode(&api); err != nil {
        return nil, provider.NewError(p.cfg.Name, fmt.Errorf("decode: %w", err))
    }
    if api.QuoteResponse.Error != nil {
        return nil, provider.NewError(p.cfg.Name, fmt.Errorf("api error: code=%s msg=%q", api.QuoteResponse.Error.Code, api.QuoteResponse.Error.Description))
    }

    rateByTicker := make(map[string]float64, len(api.QuoteResponse.Result))
    for _, r := range api.QuoteResponse.Result {
        v, err := r.RegularMarketPrice.Float64()
        if err != nil {
            continue
        }
        rateByTicker[r.Symbol] = v
    }

    now := time.Now().UTC()
    out := make([]market.Quote, 0, len(assets))
    for _, a := range assets {
        if v, ok := rateByTicker[directTicker(a.Symbol, p.cfg.Base)]; ok && validRate(v) {
            out = append(out, market.Ok(a, decimal.NewFromFloat(v), now))
            continue
        }
        // Some pairs only trade in the USD-first direction; invert.
        if v, ok := rateByTicker[inverseTicker(a.Symbol, p.cfg.Base)]; ok && validRate(v) && v > 0 {
            out = append(out, market.Ok(a, decimal.NewFromFloat(1/v), now))
            continue
        }
        out = append(out, market.Unavailable(a, now))
    }
    return out, nil
}

func directTicker(symbol, base string) string  { return symbol + base + "=X" }
func inverseTicker(symbol, base string) string { return base + symbol + "=X" }

func validRate(v float64) bool {
    return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

type apiResponse struct {
    QuoteResponse struct {
        Result []quoteEntry `json:"result"`
        Error  *apiError    `json:"error"`
    } `json:"quoteResponse"`
}

type quoteEntry struct {
    Symbol             string      `json:"symbol"`
    RegularMarketPrice json.Number `json:"regularMarketPrice"`
}

type apiError struct {
    Code        string `json:"code"`
    Description string `json:"description"`
}
