// SPDX-License-Identifier: MIT
// Package: dmprdpg/report
//
// csv.go — tabular exports of the diagnostics.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"github.com/katalvlaran/dmprdpg/embed"
)

// Column headers.
var (
	variancesHeader = []string{"side", "slice", "community", "variance"}
	qqHeader        = []string{"side", "slice", "community", "dim", "index", "theoretical", "sample"}
	scatterHeader   = []string{"side", "slice", "kind", "community", "x", "y"}
)

// Point kinds in scatter.csv.
const (
	KindNode     = "node"
	KindTheory   = "theory"
	KindCentroid = "centroid"
)

// WriteVariancesCSV writes one row per (side, slice, community).
func WriteVariancesCSV(w io.Writer, v *dmpsbm.Variances) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(variancesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, part := range []struct {
		side embed.Side
		rows [][]float64
	}{{embed.Left, v.Layers}, {embed.Right, v.Times}} {
		for s, row := range part.rows {
			for k, x := range row {
				rec := []string{part.side.String(), itoa(s), itoa(k), ftoa(x)}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write row: %w", err)
				}
			}
		}
	}

	return flush(cw)
}

// WriteQQCSV writes one row per point of every series.
func WriteQQCSV(w io.Writer, series []dmpsbm.QQSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(qqHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, q := range series {
		for i := range q.Sample {
			rec := []string{
				q.Side.String(), itoa(q.Slice), itoa(q.Community), itoa(q.Dim),
				itoa(i), ftoa(q.Theoretical[i]), ftoa(q.Sample[i]),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	return flush(cw)
}

// WriteScatterCSV writes node, theory and centroid markers of every slice.
func WriteScatterCSV(w io.Writer, slices []dmpsbm.ScatterSlice) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scatterHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range slices {
		for _, set := range []struct {
			kind   string
			points []dmpsbm.Point
		}{{KindNode, s.Nodes}, {KindTheory, s.Theory}, {KindCentroid, s.Centroids}} {
			for _, p := range set.points {
				rec := []string{s.Side.String(), itoa(s.Slice), set.kind, itoa(p.Community), ftoa(p.X), ftoa(p.Y)}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write row: %w", err)
				}
			}
		}
	}

	return flush(cw)
}

func flush(cw *csv.Writer) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

func itoa(i int) string { return strconv.Itoa(i) }

// ftoa uses the shortest representation that round-trips.
func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
