package main

import (
    "context"
    "flag"
    "net/http"
    "os"
    "time"

    "github.com/joho/godotenv"
    "github.com/sirupsen/logrus"

    "assettracker/internal/config"
    "assettracker/internal/display"
    "assettracker/internal/httpx"
    "assettracker/internal/provider"
    "assettracker/internal/provider/coingecko"
    "assettracker/internal/provider/coingeckoadapter"
    "assettracker/internal/provider/yahoo"
    "assettracker/internal/refresh"
)

func main() {
    var (
        configPath string
        asJSON     bool
        timeoutSec int
    )
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.BoolVar(&asJSON, "json", false, "emit the refresh result as JSON instead of a table")
    flag.IntVar(&timeoutSec, "timeout", 0, "per-provider timeout in seconds (overrides config)")
    flag.Parse()

    _ = godotenv.Load()

    log := logrus.StandardLogger()
    log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

    cfg, err := config.Load(configPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if timeoutSec > 0 {
        cfg.Refresh.TimeoutSec = timeoutSec
    }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    r := refresh.New(buildCrypto(cfg, httpClient, log), buildFiat(cfg, httpClient, log))
    r.Timeout = time.Duration(cfg.Refresh.TimeoutSec) * time.Second
    r.Log = log

    var out display.Renderer = &display.TableRenderer{Out: os.Stdout}
    if asJSON {
        out = &display.JSONRenderer{Out: os.Stdout}
    }

    // One shot: the refresh button of the original UI.
    d := display.NewDispatcher(r, out)
    d.OnRefreshRequested(context.Background())
    d.Wait()
}

func buildCrypto(cfg config.Config, hc *httpx.Client, log *logrus.Logger) provider.Provider {
    if !cfg.CoinGecko.Enabled {
        log.Warn("coingecko disabled; crypto quotes will be unavailable")
        return nil
    }
    opts := []coingecko.CoinGeckoAPIClientOption{
        coingecko.WithHTTPClient(hc.HTTP),
        coingecko.WithHeader(http.Header{"User-Agent": []string{hc.UserAgent}}),
    }
    if cfg.CoinGecko.BaseURL != "" {
        opts = append(opts, coingecko.WithBaseURL(cfg.CoinGecko.BaseURL))
    }
    client, err := coingecko.NewCoinGeckoAPIClient(cfg.CoinGecko.APIKey, opts...)
    if err != nil {
        log.Fatalf("coingecko client: %v", err)
    }
    return coingeckoadapter.New(coingeckoadapter.Config{Currency: cfg.CoinGecko.Currency}, client)
}

func buildFiat(cfg config.Config, hc *httpx.Client, log *logrus.Logger) provider.Provider {
    if !cfg.Yahoo.Enabled {
        log.Warn("yahoo disabled; fiat quotes will be unavailable")
        return nil
    }
    return yahoo.New(yahoo.Config{URL: cfg.Yahoo.Endpoint, Base: cfg.Yahoo.Base}, hc)
}
