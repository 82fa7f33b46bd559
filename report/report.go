// SPDX-License-Identifier: MIT
// Package: dmprdpg/report
//
// report.go — run identity, summary document and the WriteAll driver.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Output file names inside the report directory.
const (
	VariancesFile = "variances.csv"
	QQFile        = "qq.csv"
	ScatterFile   = "scatter.csv"
	SummaryFile   = "summary.yaml"
)

// Run identifies one pipeline execution.
type Run struct {
	ID      uuid.UUID
	Started time.Time
}

// NewRun tags a new run with a random UUID.
func NewRun() *Run {
	return &Run{ID: uuid.New(), Started: time.Now().UTC()}
}

// Summary is the YAML digest of an aligned run.
type Summary struct {
	RunID         string      `yaml:"run_id"`
	Started       time.Time   `yaml:"started"`
	Layers        int         `yaml:"layers"`
	Timesteps     int         `yaml:"timesteps"`
	Groups        []int       `yaml:"groups"`
	Dim           int         `yaml:"dim"`
	Seed          int64       `yaml:"seed"`
	LeftError     float64     `yaml:"left_error"`
	RightError    float64     `yaml:"right_error"`
	Error         float64     `yaml:"error"`
	RotationLeft  [][]float64 `yaml:"rotation_left"`
	RotationRight [][]float64 `yaml:"rotation_right"`
}

// NewSummary collects the headline numbers of a.
func NewSummary(run *Run, a *dmpsbm.Aligned, seed int64) *Summary {
	return &Summary{
		RunID:         run.ID.String(),
		Started:       run.Started,
		Layers:        a.Params.Layers,
		Timesteps:     a.Params.Timesteps,
		Groups:        append([]int(nil), a.Params.Groups...),
		Dim:           a.Dim(),
		Seed:          seed,
		LeftError:     a.LeftError,
		RightError:    a.RightError,
		Error:         a.Error,
		RotationLeft:  rows(a.Rotations.Left),
		RotationRight: rows(a.Rotations.Right),
	}
}

// WriteSummary encodes s as YAML.
func WriteSummary(w io.Writer, s *Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	return enc.Close()
}

// ReadSummary decodes a summary written by WriteSummary.
func ReadSummary(r io.Reader) (*Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}

	return &s, nil
}

// Outputs selects the optional tables of WriteAll.
type Outputs struct {
	Variances bool
	QQ        bool
	Scatter   bool
}

// WriteAll creates dir and writes the selected tables plus the summary.
// It returns the paths written, in write order.
func WriteAll(dir string, run *Run, a *dmpsbm.Aligned, seed int64, out Outputs) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	var written []string
	emit := func(name string, write func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		if err := writeFile(path, write); err != nil {
			return err
		}
		written = append(written, path)

		return nil
	}

	if out.Variances {
		v, err := a.Variances()
		if err != nil {
			return written, err
		}
		if err := emit(VariancesFile, func(w io.Writer) error { return WriteVariancesCSV(w, v) }); err != nil {
			return written, err
		}
	}
	if out.QQ {
		qq, err := a.QQ()
		if err != nil {
			return written, err
		}
		if err := emit(QQFile, func(w io.Writer) error { return WriteQQCSV(w, qq) }); err != nil {
			return written, err
		}
	}
	if out.Scatter {
		sc := a.Scatter()
		if err := emit(ScatterFile, func(w io.Writer) error { return WriteScatterCSV(w, sc) }); err != nil {
			return written, err
		}
	}
	s := NewSummary(run, a, seed)
	if err := emit(SummaryFile, func(w io.Writer) error { return WriteSummary(w, s) }); err != nil {
		return written, err
	}

	return written, nil
}

// writeFile creates path and hands it to write, closing it on every path.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

// rows copies a dense matrix into a row slice for serialization.
func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
