package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/subsea/internal/diagnostic"
	"github.com/conneroisu/subsea/internal/puzzle"
)

// printer formats numbers with digit grouping in text output.
var printer = message.NewPrinter(language.English)

// writeStructured encodes v as json or yaml. It reports false for text.
func writeStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// renderResult writes a solver result in format.
func renderResult(w io.Writer, format string, result *puzzle.Result) error {
	if done, err := writeStructured(w, format, result); done {
		return err
	}

	printer.Fprintf(w, "Day %d: %s\n", result.Day, result.Name)
	for _, part := range result.Parts {
		printer.Fprintf(w, "  %s: %d\n", part.Label, part.Value)
	}
	return nil
}

// traceOutput is the structured form of a filter trace.
type traceOutput struct {
	Criteria string             `json:"criteria" yaml:"criteria"`
	Record   string             `json:"record" yaml:"record"`
	Value    uint64             `json:"value" yaml:"value"`
	Rounds   []diagnostic.Round `json:"rounds" yaml:"rounds"`
}

type reportOutput struct {
	diagnostic.Report `yaml:",inline"`
	Oxygen            *traceOutput `json:"oxygen_trace,omitempty" yaml:"oxygen_trace,omitempty"`
	CO2               *traceOutput `json:"co2_trace,omitempty" yaml:"co2_trace,omitempty"`
}

func newTraceOutput(trace *diagnostic.Trace) *traceOutput {
	if trace == nil {
		return nil
	}
	return &traceOutput{
		Criteria: trace.Criteria.String(),
		Record:   trace.Record.String(),
		Value:    trace.Value,
		Rounds:   trace.Rounds,
	}
}

// renderReport writes a diagnostic report, with filter rounds if withTrace.
func renderReport(w io.Writer, format string, report *diagnostic.Report, withTrace bool) error {
	out := reportOutput{Report: *report}
	if withTrace {
		out.Oxygen = newTraceOutput(report.OxygenTrace)
		out.CO2 = newTraceOutput(report.CO2Trace)
	}
	if done, err := writeStructured(w, format, out); done {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value uint64
	}{
		{"Gamma rate", report.GammaRate},
		{"Epsilon rate", report.EpsilonRate},
		{"Power consumption", report.PowerConsumption},
		{"Oxygen generator rating", report.OxygenGeneratorRating},
		{"CO2 scrubber rating", report.CO2ScrubberRating},
		{"Life support rating", report.LifeSupportRating},
	}
	printer.Fprintf(tw, "Records\t%d\n", report.Records)
	printer.Fprintf(tw, "Width\t%d\n", report.Width)
	for _, row := range rows {
		printer.Fprintf(tw, "%s\t%d\n", row.label, row.value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if withTrace {
		for _, trace := range []*traceOutput{out.Oxygen, out.CO2} {
			if trace == nil {
				continue
			}
			if err := renderTrace(w, trace); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderTrace(w io.Writer, trace *traceOutput) error {
	fmt.Fprintf(w, "\nFilter %s -> %s (%d)\n", trace.Criteria, trace.Record, trace.Value)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  COLUMN\tZEROS\tONES\tKEPT\tSURVIVING")
	for _, r := range trace.Rounds {
		fmt.Fprintf(tw, "  %d\t%d\t%d\t%s\t%d\n", r.Column, r.Zeros, r.Ones, r.Kept, r.Surviving)
	}
	return tw.Flush()
}
