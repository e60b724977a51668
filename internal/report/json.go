// Package report renders arithmetic results as styled text or JSON.
package report

import (
	"encoding/json"
	"io"
)

// Result is one evaluated arithmetic operation.
type Result struct {
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
	Value     float64   `json:"value"`
}

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string `json:"version"`
	Result
}

// WriteJSON writes r as indented JSON to the writer.
func WriteJSON(w io.Writer, r Result, version string) error {
	if r.Operands == nil {
		r.Operands = []float64{}
	}
	report := JSONReport{
		Version: version,
		Result:  r,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
