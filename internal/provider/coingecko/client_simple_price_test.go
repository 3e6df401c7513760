package coingecko_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	coingecko "assettracker/internal/provider/coingecko"
)

var mockPricesResponse = map[string]any{
	"bitcoin":  map[string]any{"usd": 64823.17},
	"ethereum": map[string]any{"usd": 3112.4},
	"tether":   map[string]any{"usd": nil},
}

func TestSimplePrice(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "test-key", req.URL.Query().Get("x_cg_demo_api_key"))
			require.Contains(t, req.URL.Path, "/simple/price")
			require.Equal(t, "bitcoin,ethereum,tether", req.URL.Query().Get("ids"))
			require.Equal(t, "usd", req.URL.Query().Get("vs_currencies"))

			buffer := &bytes.Buffer{}
			require.NoError(t, json.NewEncoder(buffer).Encode(mockPricesResponse))

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(buffer),
			}, nil
		}).
		Times(1)

	// Arrange: setup a new CoinGecko API client
	client, err := coingecko.NewCoinGeckoAPIClient("test-key", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice
	coins, err := client.SimplePrice(t.Context(), []string{"bitcoin", "ethereum", "tether"}, []string{"usd"})
	require.NoError(t, err)
	require.Len(t, coins, 3)

	// Assert: prices should be unmarshalled from the mock response
	byID := map[string]coingecko.CoinPrice{}
	for _, c := range coins {
		byID[c.ID] = c
	}
	require.NotNil(t, byID["bitcoin"].Prices["usd"])
	require.InEpsilon(t, 64823.17, *byID["bitcoin"].Prices["usd"], 0.0001)
	require.NotNil(t, byID["ethereum"].Prices["usd"])
	require.InEpsilon(t, 3112.4, *byID["ethereum"].Prices["usd"], 0.0001)

	// Assert: a null price decodes as nil, not as an error
	require.Nil(t, byID["tether"].Prices["usd"])
}

func TestSimplePrice_ErrCreatingRequest(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: the Do method is never reached
	httpClient.EXPECT().
		Do(gomock.Any()).
		Times(0)

	// Arrange: setup a new CoinGecko API client
	client, err := coingecko.NewCoinGeckoAPIClient("", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice with an unparsable base URL
	coins, err := client.SimplePrice(t.Context(), []string{"bitcoin"}, []string{"usd"}, coingecko.WithBaseURL(string([]rune{0x7f})))
	require.Error(t, err)
	require.Nil(t, coins)
}

func TestSimplePrice_ErrPerformingRequest(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("error")
		}).
		Times(1)

	// Arrange: setup a new CoinGecko API client
	client, err := coingecko.NewCoinGeckoAPIClient("", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice
	coins, err := client.SimplePrice(t.Context(), []string{"bitcoin"}, []string{"usd"})
	require.Error(t, err)
	require.Nil(t, coins)
}

func TestSimplePrice_ErrStatusCodes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "bad request"},
		{http.StatusUnauthorized, "unauthorized"},
		{http.StatusForbidden, "unauthorized"},
		{http.StatusTooManyRequests, "rate limited"},
		{http.StatusBadGateway, "unexpected status code"},
	} {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			t.Parallel()

			// Arrange: create a mock controller
			ctrl := gomock.NewController(t)

			// Arrange: create a mock HTTP client
			httpClient := NewMockHTTPClient(ctrl)

			// Assert: stub the Do method
			httpClient.EXPECT().
				Do(gomock.Any()).
				DoAndReturn(func(req *http.Request) (*http.Response, error) {
					return &http.Response{
						StatusCode: tc.status,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil
				}).
				Times(1)

			// Arrange: setup a new CoinGecko API client
			client, err := coingecko.NewCoinGeckoAPIClient("", coingecko.WithHTTPClient(httpClient))
			require.NoError(t, err)

			// Act: call SimplePrice
			coins, err := client.SimplePrice(t.Context(), []string{"bitcoin"}, []string{"usd"})
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
			require.Nil(t, coins)
		})
	}
}

func TestSimplePrice_ErrMalformedPayload(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method with a non-JSON body
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte("<html>not json</html>"))),
			}, nil
		}).
		Times(1)

	// Arrange: setup a new CoinGecko API client
	client, err := coingecko.NewCoinGeckoAPIClient("", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: call SimplePrice
	coins, err := client.SimplePrice(t.Context(), []string{"bitcoin"}, []string{"usd"})
	require.Error(t, err)
	require.Nil(t, coins)
}
