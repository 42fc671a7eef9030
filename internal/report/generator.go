// Package report renders calculation results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/sivchari/gocalc/internal/calculator"
	"github.com/sivchari/gocalc/internal/config"
)

// Entry is one labelled result, e.g. a single line of the demonstration.
type Entry struct {
	Label  string
	Result calculator.Result
}

// Line formats the entry the way the console shows it: "<Label>: <value>"
// on success and the bare error message on failure.
func (e Entry) Line() string {
	if !e.Result.Ok() {
		return e.Result.Err.Error()
	}

	return fmt.Sprintf("%s: %s", e.Label, calculator.FormatValue(e.Result.Value))
}

// record is the JSON shape of an Entry. JSON has no Inf or NaN, so such
// numbers leave the numeric field nil and appear only in the text fields.
type record struct {
	Label     string   `json:"label"`
	Operation string   `json:"operation"`
	A         *float64 `json:"a,omitempty"`
	AText     string   `json:"aText,omitempty"`
	B         *float64 `json:"b,omitempty"`
	BText     string   `json:"bText,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Text      string   `json:"text,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Generator writes entries in the configured format.
type Generator struct {
	config  *config.Config
	out     io.Writer
	success *color.Color
	failure *color.Color
}

// New creates a new report generator writing to out.
func New(cfg *config.Config, out io.Writer) (*Generator, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if out == nil {
		return nil, errors.New("report output writer is nil")
	}

	g := &Generator{
		config:  cfg,
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	if cfg.Output.Color {
		g.success.EnableColor()
		g.failure.EnableColor()
	} else {
		g.success.DisableColor()
		g.failure.DisableColor()
	}

	return g, nil
}

// Write outputs a single entry.
func (g *Generator) Write(entry Entry) error {
	switch g.config.Output.Format {
	case config.FormatJSON:
		return g.writeJSON(entry)
	default:
		return g.writeText(entry)
	}
}

// WriteAll outputs entries in order, stopping at the first write error.
func (g *Generator) WriteAll(entries []Entry) error {
	for _, entry := range entries {
		if err := g.Write(entry); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) writeText(entry Entry) error {
	c := g.success
	if !entry.Result.Ok() {
		c = g.failure
	}

	if _, err := fmt.Fprintln(g.out, c.Sprint(entry.Line())); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func (g *Generator) writeJSON(entry Entry) error {
	r := entry.Result
	rec := record{
		Label:     entry.Label,
		Operation: r.Op.String(),
		A:         finite(r.A),
		B:         finite(r.B),
	}

	if rec.A == nil {
		rec.AText = calculator.FormatValue(r.A)
	}

	if rec.B == nil {
		rec.BText = calculator.FormatValue(r.B)
	}

	if r.Ok() {
		rec.Text = calculator.FormatValue(r.Value)
		rec.Value = finite(r.Value)
	} else {
		rec.Error = r.Err.Error()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if _, err := fmt.Fprintln(g.out, string(data)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// finite returns a pointer to v, or nil when v cannot be encoded as JSON.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}
