// Package report renders analysis results for people (text) and for tools
// (JSON). The JSON document is built as a cty value, the same representation
// the configuration layer uses, and serialized with cty's JSON encoder.
package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/schematicscan/internal/aggregate"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Entry is the result for one schematic. Source is the file path, or "-" for
// standard input.
type Entry struct {
	Source string
	Result aggregate.Result
}

// Write renders entries to w in the given format. A batch report lists every
// source with a total line in text form; otherwise the text form holds the
// totals of the single entry.
func Write(w io.Writer, format string, batch bool, entries []Entry) error {
	switch format {
	case FormatText:
		return writeText(w, batch, entries)
	case FormatJSON:
		return writeJSON(w, entries)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func totals(entries []Entry) (parts, gears int, err error) {
	results := make([]aggregate.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, e.Result)
	}
	return aggregate.Totals(results...)
}

func writeText(w io.Writer, batch bool, entries []Entry) error {
	if !batch {
		if len(entries) != 1 {
			return fmt.Errorf("single report needs one entry, got %d", len(entries))
		}
		res := entries[0].Result
		_, err := fmt.Fprintf(w, "part_sum: %d\ngear_ratio_sum: %d\n", res.PartSum, res.GearRatioSum)
		return err
	}
	parts, gears, err := totals(entries)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: part_sum=%d gear_ratio_sum=%d\n", e.Source, e.Result.PartSum, e.Result.GearRatioSum); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "total: part_sum=%d gear_ratio_sum=%d\n", parts, gears)
	return err
}

type jsonGear struct {
	Row   int   `cty:"row"`
	Col   int   `cty:"col"`
	Parts []int `cty:"parts"`
	Ratio int   `cty:"ratio"`
}

type jsonEntry struct {
	Source       string     `cty:"source"`
	PartSum      int        `cty:"part_sum"`
	GearRatioSum int        `cty:"gear_ratio_sum"`
	PartCount    int        `cty:"part_count"`
	Gears        []jsonGear `cty:"gears"`
}

type jsonTotal struct {
	PartSum      int `cty:"part_sum"`
	GearRatioSum int `cty:"gear_ratio_sum"`
}

type jsonReport struct {
	Schematics []jsonEntry `cty:"schematics"`
	Total      jsonTotal   `cty:"total"`
}

func writeJSON(w io.Writer, entries []Entry) error {
	doc := jsonReport{Schematics: make([]jsonEntry, 0, len(entries))}
	var err error
	if doc.Total.PartSum, doc.Total.GearRatioSum, err = totals(entries); err != nil {
		return err
	}
	for _, e := range entries {
		gears := make([]jsonGear, 0, len(e.Result.Gears))
		for _, g := range e.Result.Gears {
			gears = append(gears, jsonGear{
				Row:   g.At.Row,
				Col:   g.At.Col,
				Parts: []int{g.Parts[0], g.Parts[1]},
				Ratio: g.Ratio,
			})
		}
		doc.Schematics = append(doc.Schematics, jsonEntry{
			Source:       e.Source,
			PartSum:      e.Result.PartSum,
			GearRatioSum: e.Result.GearRatioSum,
			PartCount:    e.Result.PartCount,
			Gears:        gears,
		})
	}
	ty, err := gocty.ImpliedType(doc)
	if err != nil {
		return fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	val, err := gocty.ToCtyValue(doc, ty)
	if err != nil {
		return fmt.Errorf("failed to convert report: %w", err)
	}
	buf, err := ctyjson.Marshal(val, ty)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}
