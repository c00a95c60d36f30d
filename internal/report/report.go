// SPDX-License-Identifier: MIT

// Package report renders a hierarchy.Result for humans (text) or tools (yaml).
package report

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/ahp/hierarchy"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text or yaml (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", s)
	}
}

// Document is the serializable view of one run.
type Document struct {
	Source               string         `yaml:"source,omitempty"`
	RunID                string         `yaml:"run_id"`
	Level                int            `yaml:"level"`
	Method               string         `yaml:"method"`
	OK                   bool           `yaml:"ok"`
	Consistent           bool           `yaml:"consistent"`
	TypePriority         []Weight       `yaml:"type_priority,omitempty"`
	CriteriaPriority     []Weight       `yaml:"criteria_priority,omitempty"`
	AlternativesPriority []Weight       `yaml:"alternatives_priority,omitempty"`
	Ranking              []Ranked       `yaml:"ranking,omitempty"`
	Matrices             []MatrixReport `yaml:"matrices,omitempty"`
	Errors               []string       `yaml:"errors,omitempty"`
}

// Weight pairs an item with its weight.
type Weight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// Ranked is a ranking entry.
type Ranked struct {
	Rank   int     `yaml:"rank"`
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// MatrixReport is the evaluation of one comparison matrix.
type MatrixReport struct {
	Key         string      `yaml:"key"`
	Items       []string    `yaml:"items"`
	Tokens      [][]string  `yaml:"tokens"`
	Weights     []float64   `yaml:"weights"`
	Consistency Consistency `yaml:"consistency"`
}

// Consistency mirrors consistency.Record.
type Consistency struct {
	N         int     `yaml:"n"`
	LambdaMax float64 `yaml:"lambda_max"`
	CI        float64 `yaml:"ci"`
	RI        float64 `yaml:"ri"`
	CR        float64 `yaml:"cr"`
	Status    string  `yaml:"status"`
}

// Build converts res into a Document. source names the analysis file.
func Build(source string, res *hierarchy.Result) Document {
	doc := Document{
		Source:               source,
		RunID:                res.RunID.String(),
		Level:                int(res.Level),
		Method:               res.Method.String(),
		OK:                   res.OK(),
		Consistent:           res.Consistent(),
		TypePriority:         weights(res.Types, res.TypePriority),
		CriteriaPriority:     weights(res.Criteria, res.CriteriaPriority),
		AlternativesPriority: weights(res.Alternatives, res.AlternativesPriority),
	}
	for _, r := range res.Ranking() {
		doc.Ranking = append(doc.Ranking, Ranked{Rank: r.Rank, Name: r.Name, Weight: r.Weight})
	}
	for _, k := range res.Evaluated {
		mr, ok := res.Matrices[k]
		if !ok {
			continue
		}
		n := mr.Comparison.Len()
		tokens := make([][]string, n)
		for i := range tokens {
			tokens[i] = make([]string, n)
			for j := range tokens[i] {
				tokens[i][j] = mr.Comparison.Token(i, j)
			}
		}
		rec := mr.Consistency
		doc.Matrices = append(doc.Matrices, MatrixReport{
			Key:     k.String(),
			Items:   mr.Items,
			Tokens:  tokens,
			Weights: mr.Priority.Weights,
			Consistency: Consistency{
				N:         rec.N,
				LambdaMax: rec.LambdaMax,
				CI:        rec.CI,
				RI:        rec.RI,
				CR:        rec.CR,
				Status:    rec.Status.String(),
			},
		})
	}
	for _, err := range res.Errors {
		doc.Errors = append(doc.Errors, err.Error())
	}

	return doc
}

// Write renders doc to w in the requested format.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode: %w", err)
		}

		return enc.Close()
	case FormatText:
		return writeText(w, doc)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

func weights(names []string, w []float64) []Weight {
	if len(w) == 0 || len(w) != len(names) {
		return nil
	}
	out := make([]Weight, len(w))
	for i := range w {
		out[i] = Weight{Name: names[i], Weight: w[i]}
	}

	return out
}
