package coingeckoadapter

import (
    "context"
    "fmt"
    "math"
    "testing"

    "assettracker/internal/market"
    "assettracker/internal/provider"
    "assettracker/internal/provider/coingecko"
)

type stubClient struct {
    coins []coingecko.CoinPrice
    err   error

    gotIDs        []string
    gotCurrencies []string
    calls         int
}

func (s *stubClient) SimplePrice(_ context.Context, ids []string, vsCurrencies []string, _ ...coingecko.CoinGeckoAPIClientOption) ([]coingecko.CoinPrice, error) {
    s.calls++
    s.gotIDs = ids
    s.gotCurrencies = vsCurrencies
    return s.coins, s.err
}

func fptr(v float64) *float64 { return &v }

func coin(id string, usd *float64) coingecko.CoinPrice {
    return coingecko.CoinPrice{ID: id, Prices: map[string]*float64{"usd": usd}}
}

func TestFetch_OneQuotePerAsset_InOrder(t *testing.T) {
    assets := market.CryptoWatchlist()
    stub := &stubClient{}
    for _, a := range assets {
        stub.coins = append(stub.coins, coin(DefaultIDMap()[a.Symbol], fptr(42)))
    }

    a := New(Config{}, stub)
    quotes, err := a.Fetch(t.Context(), assets)
    if err != nil { t.Fatalf("unexpected error: %v", err) }
    if len(quotes) != len(assets) {
        t.Fatalf("want %d quotes, got %d", len(assets), len(quotes))
    }
    for i, q := range quotes {
        if q.Asset != assets[i] {
            t.Fatalf("quote %d out of order: got %v want %v", i, q.Asset, assets[i])
        }
        if q.Status != market.StatusOk {
            t.Fatalf("quote %d not ok: %+v", i, q)
        }
    }
    if stub.calls != 1 {
        t.Fatalf("want exactly one batched call, got %d", stub.calls)
    }
    if len(stub.gotIDs) != len(assets) {
        t.Fatalf("want %d ids in the batch, got %d", len(assets), len(stub.gotIDs))
    }
}

func TestFetch_MissingAndInvalidPricesBecomeUnavailable(t *testing.T) {
    assets := []market.Asset{
        {Symbol: "BTC", DisplayName: "Bitcoin", Kind: market.KindCrypto},
        {Symbol: "ETH", DisplayName: "Ethereum", Kind: market.KindCrypto},
        {Symbol: "XRP", DisplayName: "XRP", Kind: market.KindCrypto},
        {Symbol: "SOL", DisplayName: "Solana", Kind: market.KindCrypto},
        {Symbol: "ADA", DisplayName: "Cardano", Kind: market.KindCrypto},
    }
    stub := &stubClient{coins: []coingecko.CoinPrice{
        coin("bitcoin", fptr(64823.17)),
        coin("ethereum", nil),               // null price
        coin("ripple", fptr(-1)),            // negative
        coin("solana", fptr(math.Inf(1))),   // non-finite
        // cardano absent from the response entirely
    }}

    a := New(Config{}, stub)
    quotes, err := a.Fetch(t.Context(), assets)
    if err != nil { t.Fatalf("unexpected error: %v", err) }
    if len(quotes) != 5 { t.Fatalf("want 5 quotes, got %d", len(quotes)) }

    if quotes[0].Status != market.StatusOk {
        t.Fatalf("BTC should be ok: %+v", quotes[0])
    }
    if got := quotes[0].PriceUSD.String(); got != "64823.17" {
        t.Fatalf("BTC price = %s", got)
    }
    for i := 1; i < 5; i++ {
        if quotes[i].Status != market.StatusUnavailable {
            t.Fatalf("quote %d (%s) should be unavailable: %+v", i, quotes[i].Asset.Symbol, quotes[i])
        }
    }
}

func TestFetch_TotalFailureIsProviderError(t *testing.T) {
    stub := &stubClient{err: fmt.Errorf("rate limited")}
    a := New(Config{}, stub)

    quotes, err := a.Fetch(t.Context(), market.CryptoWatchlist())
    if quotes != nil { t.Fatalf("want nil quotes, got %v", quotes) }
    if !provider.IsProviderError(err) {
        t.Fatalf("want *provider.Error, got %T: %v", err, err)
    }
}

func TestFetch_UnknownSymbolIsUnavailable(t *testing.T) {
    assets := []market.Asset{{Symbol: "WAT", DisplayName: "Wat", Kind: market.KindCrypto}}
    stub := &stubClient{}

    a := New(Config{}, stub)
    quotes, err := a.Fetch(t.Context(), assets)
    if err != nil { t.Fatalf("unexpected error: %v", err) }
    if len(quotes) != 1 || quotes[0].Status != market.StatusUnavailable {
        t.Fatalf("unexpected quotes: %+v", quotes)
    }
    if len(stub.gotIDs) != 0 {
        t.Fatalf("unmapped symbol should not be requested: %v", stub.gotIDs)
    }
}
