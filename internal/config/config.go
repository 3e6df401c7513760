package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Refresh struct {
    // TimeoutSec bounds each provider call within one refresh.
    TimeoutSec int `json:"timeout_sec"`
}

type CoinGecko struct {
    Enabled  bool   `json:"enabled"`
    APIKey   string `json:"api_key"`
    BaseURL  string `json:"base_url"`
    Currency string `json:"currency"`
}

type Yahoo struct {
    Enabled  bool   `json:"enabled"`
    Endpoint string `json:"endpoint"`
    Base     string `json:"base"`
}

type Config struct {
    Server    Server    `json:"server"`
    Refresh   Refresh   `json:"refresh"`
    CoinGecko CoinGecko `json:"coingecko"`
    Yahoo     Yahoo     `json:"yahoo"`
}

func Default() Config {
    return Config{
        Server:  Server{Port: "8080", RequestTimeoutSec: 15},
        Refresh: Refresh{TimeoutSec: 10},
        CoinGecko: CoinGecko{
            Enabled:  true,
            Currency: "usd",
        },
        Yahoo: Yahoo{
            Enabled:  true,
            Endpoint: "https://query1.finance.yahoo.com/v7/finance/quote",
            Base:     "USD",
        },
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("REFRESH_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Refresh.TimeoutSec = x }
    }
    if v := os.Getenv("COINGECKO_ENABLED"); v != "" { cfg.CoinGecko.Enabled = parseBool(v, cfg.CoinGecko.Enabled) }
    if v := os.Getenv("COINGECKO_API_KEY"); v != "" { cfg.CoinGecko.APIKey = v }
    if v := os.Getenv("COINGECKO_BASE_URL"); v != "" { cfg.CoinGecko.BaseURL = v }
    if v := os.Getenv("COINGECKO_CURRENCY"); v != "" { cfg.CoinGecko.Currency = v }
    if v := os.Getenv("YAHOO_ENABLED"); v != "" { cfg.Yahoo.Enabled = parseBool(v, cfg.Yahoo.Enabled) }
    if v := os.Getenv("YAHOO_ENDPOINT"); v != "" { cfg.Yahoo.Endpoint = v }
    if v := os.Getenv("YAHOO_BASE"); v != "" { cfg.Yahoo.Base = v }
}

func parseBool(v string, def bool) bool {
    switch strings.ToLower(v) {
    case "1", "true", "yes", "y":
        return true
    case "0", "false", "no", "n":
        return false
    }
    return def
}
