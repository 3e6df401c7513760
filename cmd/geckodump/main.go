package main

// geckodump fetches the raw crypto-provider payload for the fixed
// watch-list and writes it to a file, for inspecting what the upstream
// actually returns.

import (
    "bytes"
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "net/url"
    "os"
    "sort"
    "strings"
    "time"

    "github.com/joho/godotenv"
    "github.com/sirupsen/logrus"

    "assettracker/internal/config"
    "assettracker/internal/httpx"
    "assettracker/internal/provider/coingeckoadapter"
)

func main() {
    var (
        outPath    string
        cfgPath    string
        timeoutSec int
    )
    flag.StringVar(&outPath, "out", "coingecko_simple_price.json", "output JSON file path")
    flag.StringVar(&cfgPath, "config", "", "path to config.json (optional)")
    flag.IntVar(&timeoutSec, "timeout", 20, "HTTP timeout seconds")
    flag.Parse()

    _ = godotenv.Load()
    log := logrus.StandardLogger()

    cfg, err := config.Load(cfgPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    base := cfg.CoinGecko.BaseURL
    if base == "" {
        base = "https://api.coingecko.com/api/v3"
    }

    idMap := coingeckoadapter.DefaultIDMap()
    ids := make([]string, 0, len(idMap))
    for _, id := range idMap {
        ids = append(ids, id)
    }
    sort.Strings(ids)

    query := url.Values{}
    query.Set("ids", strings.Join(ids, ","))
    query.Set("vs_currencies", cfg.CoinGecko.Currency)
    if cfg.CoinGecko.APIKey != "" {
        query.Set("x_cg_demo_api_key", cfg.CoinGecko.APIKey)
    }
    target := fmt.Sprintf("%s/simple/price?%s", base, query.Encode())

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
    defer cancel()

    client := httpx.New(time.Duration(timeoutSec) * time.Second)
    resp, err := client.Get(ctx, target)
    if err != nil {
        log.Fatalf("fetch: %v", err)
    }
    defer resp.Body.Close()

    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        log.Fatalf("read: %v", err)
    }

    var pretty bytes.Buffer
    if err := json.Indent(&pretty, raw, "", "  "); err != nil {
        log.Fatalf("payload is not JSON: %v", err)
    }
    if err := os.WriteFile(outPath, pretty.Bytes(), 0o644); err != nil {
        log.Fatalf("write: %v", err)
    }
    log.Infof("wrote %d coins (%d bytes) to %s", len(ids), pretty.Len(), outPath)
}
