package display

import (
    "encoding/json"
    "io"

    "assettracker/internal/market"
)

// JSONRenderer writes the raw RefreshResult as indented JSON, for piping
// into other tooling.
type JSONRenderer struct {
    Out io.Writer
}

func (j *JSONRenderer) Render(result market.RefreshResult) {
    enc := json.NewEncoder(j.Out)
    enc.SetEscapeHTML(false)
    enc.SetIndent("", "  ")
    _ = enc.Encode(result)
}
