package market

// The watch-list is fixed: 20 cryptocurrencies ranked by market
// capitalization and 10 fiat currencies, all priced against USD.
// Order here is the order every RefreshResult reports in.

var cryptoWatchlist = []Asset{
    {Symbol: "BTC", DisplayName: "Bitcoin", Kind: KindCrypto},
    {Symbol: "ETH", DisplayName: "Ethereum", Kind: KindCrypto},
    {Symbol: "USDT", DisplayName: "Tether", Kind: KindCrypto},
    {Symbol: "XRP", DisplayName: "XRP", Kind: KindCrypto},
    {Symbol: "BNB", DisplayName: "BNB", Kind: KindCrypto},
    {Symbol: "SOL", DisplayName: "Solana", Kind: KindCrypto},
    {Symbol: "USDC", DisplayName: "USDC", Kind: KindCrypto},
    {Symbol: "DOGE", DisplayName: "Dogecoin", Kind: KindCrypto},
    {Symbol: "ADA", DisplayName: "Cardano", Kind: KindCrypto},
    {Symbol: "TRX", DisplayName: "TRON", Kind: KindCrypto},
    {Symbol: "AVAX", DisplayName: "Avalanche", Kind: KindCrypto},
    {Symbol: "LINK", DisplayName: "Chainlink", Kind: KindCrypto},
    {Symbol: "TON", DisplayName: "Toncoin", Kind: KindCrypto},
    {Symbol: "SHIB", DisplayName: "Shiba Inu", Kind: KindCrypto},
    {Symbol: "XLM", DisplayName: "Stellar", Kind: KindCrypto},
    {Symbol: "DOT", DisplayName: "Polkadot", Kind: KindCrypto},
    {Symbol: "BCH", DisplayName: "Bitcoin Cash", Kind: KindCrypto},
    {Symbol: "LTC", DisplayName: "Litecoin", Kind: KindCrypto},
    {Symbol: "UNI", DisplayName: "Uniswap", Kind: KindCrypto},
    {Symbol: "NEAR", DisplayName: "NEAR Protocol", Kind: KindCrypto},
}

var fiatWatchlist = []Asset{
    {Symbol: "EUR", DisplayName: "Euro", Kind: KindFiat},
    {Symbol: "JPY", DisplayName: "Japanese Yen", Kind: KindFiat},
    {Symbol: "GBP", DisplayName: "British Pound", Kind: KindFiat},
    {Symbol: "AUD", DisplayName: "Australian Dollar", Kind: KindFiat},
    {Symbol: "CAD", DisplayName: "Canadian Dollar", Kind: KindFiat},
    {Symbol: "CHF", DisplayName: "Swiss Franc", Kind: KindFiat},
    {Symbol: "CNY", DisplayName: "Chinese Yuan", Kind: KindFiat},
    {Symbol: "HKD", DisplayName: "Hong Kong Dollar", Kind: KindFiat},
    {Symbol: "NZD", DisplayName: "New Zealand Dollar", Kind: KindFiat},
    {Symbol: "BRL", DisplayName: "Brazilian Real", Kind: KindFiat},
}

// CryptoWatchlist returns the fixed crypto watch-list in report order.
// Callers get a fresh slice and may not affect the canonical list.
func CryptoWatchlist() []Asset {
    out := make([]Asset, len(cryptoWatchlist))
    copy(out, cryptoWatchlist)
    return out
}

// FiatWatchlist returns the fixed fiat watch-list in report order.
func FiatWatchlist() []Asset {
    out := make([]Asset, len(fiatWatchlist))
    copy(out, fiatWatchlist)
    return out
}

// Watchlist returns the full 30-asset watch-list: crypto block first,
// then fiat, matching RefreshResult.Quotes order.
func Watchlist() []Asset {
    out := make([]Asset, 0, len(cryptoWatchlist)+len(fiatWatchlist))
    out = append(out, cryptoWatchlist...)
    out = append(out, fiatWatchlist...)
    return out
}
