package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// CoinPrice holds one coin's current prices from the simple/price endpoint,
// keyed by vs-currency. A nil price means the API returned null for that
// currency.
type CoinPrice struct {
	ID     string
	Prices map[string]*float64
}

// SimplePrice retrieves current prices for the given coin ids in the given
// vs-currencies, in a single batched request.
func (c *CoinGeckoAPIClient) SimplePrice(ctx context.Context, ids []string, vsCurrencies []string, opts ...CoinGeckoAPIClientOption) ([]CoinPrice, error) {
	var override = &CoinGeckoAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	query.Add("ids", strings.Join(ids, ","))
	query.Add("vs_currencies", strings.Join(vsCurrencies, ","))

	url := fmt.Sprintf("%s/simple/price?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusBadRequest:
		b, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("bad request with ids=%v", ids)
		}
		return nil, fmt.Errorf("bad request with ids=%s", string(b))

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("unauthorized")

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body map[string]any
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding prices response: %w", err)
	}

	var coins = []CoinPrice{}
	for id, raw := range body {
		// {
		//   "bitcoin": {
		//     "usd": 64823.17
		//   }
		// }
		coin, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decoding coin %q: unexpected type %T", id, raw)
		}

		var prices = map[string]*float64{}
		for _, currency := range vsCurrencies {
			price, err := parseNullableValue[float64](coin, currency)
			if err != nil {
				return nil, fmt.Errorf("decoding %s price for %q: %w", currency, id, err)
			}
			prices[currency] = price
		}

		coins = append(coins, CoinPrice{
			ID:     id,
			Prices: prices,
		})
	}

	return coins, nil
}

// parseNullableValue is a helper function to parse a nullable value.
func parseNullableValue[T any](data map[string]any, key string) (*T, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, nil
	}
	if v, ok := v.(T); ok {
		return &v, nil
	}
	return nil, fmt.Errorf("unexpected type: %T", v)
}
