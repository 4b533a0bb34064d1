package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/hopsim/internal/sim"
)

type ExportData struct {
	Sites   int                `json:"sites"`
	Steps   int                `json:"steps"`
	Rate    float64            `json:"rate"`
	Dt      float64            `json:"dt"`
	Stepper string             `json:"stepper"`
	Times   []float64          `json:"times"`
	Field   [][]float64        `json:"field"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes the full run, field included, as indented JSON.
func ExportJSON(w io.Writer, rate, dt float64, stepper string, result *sim.Result) error {
	data := ExportData{
		Sites:   result.Field.Sites(),
		Steps:   result.Field.Steps(),
		Rate:    rate,
		Dt:      dt,
		Stepper: stepper,
		Times:   result.Times,
		Field:   result.Field.Rows(),
		Metrics: result.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
