// SPDX-License-Identifier: MIT

// Package bundle reads and writes analysis files: the YAML form of a
// hierarchy.Input.
//
//	level: 2
//	alternatives: [A, B, C]
//	criteria: [Cost, Quality]
//	matrices:
//	  - kind: criteria
//	    judgments:
//	      - {row: 0, col: 1, value: "1/3"}
//	  - kind: alternatives
//	    name: Cost
//	    judgments: [...]
package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/pairwise"
)

var (
	// ErrRejectedItem indicates a blank or duplicate item name.
	ErrRejectedItem = errors.New("bundle: item rejected")

	// ErrDuplicateMatrix indicates two matrix entries with the same kind and name.
	ErrDuplicateMatrix = errors.New("bundle: duplicate matrix")

	// ErrDuplicatePair indicates the same (row, col) twice in one matrix.
	ErrDuplicatePair = errors.New("bundle: duplicate judgment")
)

// File is the on-disk representation of one analysis.
type File struct {
	Level        int           `yaml:"level"`
	Alternatives []string      `yaml:"alternatives,omitempty"`
	Criteria     []string      `yaml:"criteria,omitempty"`
	Types        []TypeEntry   `yaml:"criteria_types,omitempty"`
	Matrices     []MatrixEntry `yaml:"matrices,omitempty"`
}

// TypeEntry declares a criteria type.
type TypeEntry struct {
	Name     string   `yaml:"name"`
	Criteria []string `yaml:"criteria"`
}

// MatrixEntry holds the upper-triangle judgments of one comparison matrix.
type MatrixEntry struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name,omitempty"`
	Judgments []Judgment `yaml:"judgments"`
}

// Judgment is one cell above the diagonal.
type Judgment struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Value string `yaml:"value"`
}

// Decode parses a bundle, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("bundle: decode: %w", err)
	}

	return &f, nil
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("bundle: encode: %w", err)
	}

	return enc.Close()
}

// Read loads the bundle at path.
func Read(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bundle: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Write saves f to path.
func Write(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("bundle: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bundle: %w", err)
	}

	return nil
}

// Input converts the file into an aggregation input. Unlike the item
// registry, which drops rejected names silently, a bundle with a blank or
// duplicate name, an empty type, an unknown matrix kind or a repeated
// matrix/judgment is an error.
func (f *File) Input() (hierarchy.Input, error) {
	var it hierarchy.Items
	for _, a := range f.Alternatives {
		if !it.AddAlternative(a) {
			return hierarchy.Input{}, fmt.Errorf("%w: alternative %q", ErrRejectedItem, a)
		}
	}
	for _, c := range f.Criteria {
		if !it.AddCriterion(c) {
			return hierarchy.Input{}, fmt.Errorf("%w: criterion %q", ErrRejectedItem, c)
		}
	}
	for _, t := range f.Types {
		if !it.AddCriterionType(t.Name, t.Criteria) {
			return hierarchy.Input{}, fmt.Errorf("%w: criteria type %q", ErrRejectedItem, t.Name)
		}
	}

	judgments := make(map[hierarchy.Key]pairwise.Judgments, len(f.Matrices))
	for i, m := range f.Matrices {
		kind, err := hierarchy.ParseKind(m.Kind)
		if err != nil {
			return hierarchy.Input{}, fmt.Errorf("bundle: matrices[%d]: %w", i, err)
		}
		key := hierarchy.Key{Kind: kind, Name: m.Name}
		if kind == hierarchy.KindTypes {
			key = hierarchy.TypesKey()
		}
		if _, dup := judgments[key]; dup {
			return hierarchy.Input{}, fmt.Errorf("%w: %s", ErrDuplicateMatrix, key)
		}
		j := make(pairwise.Judgments, len(m.Judgments))
		for _, e := range m.Judgments {
			p := pairwise.Pair{Row: e.Row, Col: e.Col}
			if _, dup := j[p]; dup {
				return hierarchy.Input{}, fmt.Errorf("%w: %s %s", ErrDuplicatePair, key, p)
			}
			j[p] = e.Value
		}
		judgments[key] = j
	}

	return hierarchy.Input{Items: it, Level: hierarchy.Level(f.Level), Judgments: judgments}, nil
}

// FromInput renders in as a File. Matrices follow hierarchy.RequiredKeys
// order, then any extra keys sorted by kind and name; judgments are sorted
// by (row, col).
func FromInput(in hierarchy.Input) *File {
	f := &File{
		Level:        int(in.Level),
		Alternatives: in.Items.Alternatives(),
		Criteria:     in.Items.Criteria(),
	}
	for _, t := range in.Items.Types() {
		f.Types = append(f.Types, TypeEntry{Name: t.Name, Criteria: t.Criteria})
	}
	for _, k := range orderedKeys(in) {
		f.Matrices = append(f.Matrices, matrixEntry(k, in.Judgments[k]))
	}

	return f
}

func matrixEntry(k hierarchy.Key, j pairwise.Judgments) MatrixEntry {
	e := MatrixEntry{Kind: k.Kind.String(), Name: k.Name, Judgments: []Judgment{}}
	for _, p := range sortedPairs(j) {
		e.Judgments = append(e.Judgments, Judgment{Row: p.Row, Col: p.Col, Value: j[p]})
	}

	return e
}
