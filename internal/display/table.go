package display

import (
    "fmt"
    "io"

    "github.com/olekukonko/tablewriter"

    "assettracker/internal/market"
)

// TableRenderer writes a refresh as a terminal table, one row per watched
// asset. Unavailable quotes render as "N/A" rather than being dropped.
type TableRenderer struct {
    Out io.Writer
}

func (t *TableRenderer) Render(result market.RefreshResult) {
    table := tablewriter.NewWriter(t.Out)
    table.SetHeader([]string{"Asset", "Symbol", "Kind", "Price (USD)", "Status"})
    table.SetAutoWrapText(false)

    for _, q := range result.Quotes {
        price := "N/A"
        status := "unavailable"
        if q.Status == market.StatusOk {
            price = q.PriceUSD.String()
            status = "ok"
        }
        table.Append([]string{q.Asset.DisplayName, q.Asset.Symbol, string(q.Asset.Kind), price, status})
    }
    table.Render()

    if result.PartialFailure {
        fmt.Fprintln(t.Out, "warning: some quotes are unavailable for this refresh")
    }
    fmt.Fprintf(t.Out, "refreshed at %s\n", result.CompletedAt.Format("2006-01-02 15:04:05 MST"))
}
