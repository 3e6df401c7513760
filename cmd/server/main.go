package main

import (
    "compress/gzip"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "sync"
    "syscall"
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
    _ = godotenv.Load()

    log := logrus.StandardLogger()
    log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    var crypto provider.Provider
    if cfg.CoinGecko.Enabled {
        opts := []coingecko.CoinGeckoAPIClientOption{
            coingecko.WithHTTPClient(httpClient.HTTP),
            coingecko.WithHeader(http.Header{"User-Agent": []string{httpClient.UserAgent}}),
        }
        if cfg.CoinGecko.BaseURL != "" {
            opts = append(opts, coingecko.WithBaseURL(cfg.CoinGecko.BaseURL))
        }
        client, err := coingecko.NewCoinGeckoAPIClient(cfg.CoinGecko.APIKey, opts...)
        if err != nil {
            log.Fatalf("coingecko client: %v", err)
        }
        crypto = coingeckoadapter.New(coingeckoadapter.Config{Currency: cfg.CoinGecko.Currency}, client)
    } else {
        log.Warn("coingecko disabled; crypto quotes will be unavailable")
    }

    var fiat provider.Provider
    if cfg.Yahoo.Enabled {
        fiat = yahoo.New(yahoo.Config{URL: cfg.Yahoo.Endpoint, Base: cfg.Yahoo.Base}, httpClient)
    } else {
        log.Warn("yahoo disabled; fiat quotes will be unavailable")
    }

    r := refresh.New(crypto, fiat)
    r.Timeout = time.Duration(cfg.Refresh.TimeoutSec) * time.Second
    r.Log = log

    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    mux.HandleFunc("/api/refresh", func(w http.ResponseWriter, req *http.Request) {
        if req.Method != http.MethodGet {
            http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
            return
        }
        writeRefresh(w, req.Context(), r)
    })

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withJSONHeaders(withGzip(recoverPanic(mux))),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      30 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Infof("server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

// writeRefresh runs one full refresh cycle and writes the result as JSON.
// It always answers 200: total provider unavailability is reported through
// partial_failure and per-quote statuses, not an error status.
func writeRefresh(w http.ResponseWriter, ctx context.Context, r display.Refresher) {
    result := r.Refresh(ctx)
    w.WriteHeader(http.StatusOK)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(result)
}

func withJSONHeaders(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json; charset=utf-8")
        // Basic CORS for browser usage; adjust as needed.
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}

// withGzip compresses response when client supports gzip.
func withGzip(next http.Handler) http.Handler {
    var gzPool = sync.Pool{New: func() any {
        // Prefer best speed to reduce CPU usage since payloads are JSON
        w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
        return w
    }}
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }
        gz := gzPool.Get().(*gzip.Writer)
        gz.Reset(w)
        defer func() {
            _ = gz.Close()
            gz.Reset(io.Discard)
            gzPool.Put(gz)
        }()
        w.Header().Set("Content-Encoding", "gzip")
        w.Header().Add("Vary", "Accept-Encoding")
        gw := gzipResponseWriter{ResponseWriter: w, Writer: gz}
        next.ServeHTTP(gw, r)
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    Writer io.Writer
}

func (g gzipResponseWriter) Write(b []byte) (int, error) {
    return g.Writer.Write(b)
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        defer func() {
            if rec := recover(); rec != nil {
                http.Error(w, "internal server error", http.StatusInternalServerError)
            }
        }()
        next.ServeHTTP(w, r)
    })
}
