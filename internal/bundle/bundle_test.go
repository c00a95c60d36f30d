// SPDX-License-Identifier: MIT

package bundle_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/internal/bundle"
	"github.com/katalvlaran/ahp/pairwise"
)

const threeLevel = `
level: 3
alternatives: [A, B]
criteria: [Cost, Quality, Speed]
criteria_types:
  - name: Economic
    criteria: [Cost]
  - name: Technical
    criteria: [Quality, Speed]
matrices:
  - kind: types
    judgments:
      - {row: 0, col: 1, value: "1/3"}
  - kind: criteria
    name: Technical
    judgments:
      - {row: 0, col: 1, value: 3}
  - kind: alternatives
    name: Cost
    judgments:
      - {row: 0, col: 1, value: "3"}
  - kind: alternatives
    name: Quality
    judgments:
      - {row: 0, col: 1, value: 1/3}
`

func decode(t *testing.T, src string) hierarchy.Input {
	t.Helper()
	f, err := bundle.Decode(strings.NewReader(src))
	require.NoError(t, err)
	in, err := f.Input()
	require.NoError(t, err)
	return in
}

func TestDecode_Input(t *testing.T) {
	in := decode(t, threeLevel)

	assert.Equal(t, hierarchy.Level3, in.Level)
	assert.Equal(t, []string{"A", "B"}, in.Items.Alternatives())
	assert.Equal(t, []string{"Economic", "Technical"}, in.Items.TypeNames())
	require.Len(t, in.Judgments, 4)
	assert.Equal(t, "1/3", in.Judgments[hierarchy.TypesKey()][pairwise.Pair{Row: 0, Col: 1}])
	assert.Equal(t, "3", in.Judgments[hierarchy.CriteriaKey("Technical")][pairwise.Pair{Row: 0, Col: 1}], "integers decode as tokens")
	assert.Equal(t, "1/3", in.Judgments[hierarchy.AlternativesKey("Quality")][pairwise.Pair{Row: 0, Col: 1}])
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"duplicate alternative", "level: 1\nalternatives: [A, A]\n", bundle.ErrRejectedItem},
		{"blank criterion", "level: 2\ncriteria: [' ']\n", bundle.ErrRejectedItem},
		{"empty type", "level: 3\ncriteria: [Cost]\ncriteria_types: [{name: T, criteria: [Nope]}]\n", bundle.ErrRejectedItem},
		{"duplicate matrix", "level: 1\nalternatives: [A, B]\nmatrices: [{kind: alternatives, judgments: []}, {kind: alternatives, judgments: []}]\n", bundle.ErrDuplicateMatrix},
		{"duplicate pair", "level: 1\nalternatives: [A, B]\nmatrices: [{kind: alternatives, judgments: [{row: 0, col: 1, value: '2'}, {row: 0, col: 1, value: '3'}]}]\n", bundle.ErrDuplicatePair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := bundle.Decode(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = f.Input()
			require.ErrorIs(t, err, tt.want)
		})
	}

	f, err := bundle.Decode(strings.NewReader("level: 1\nmatrices: [{kind: weights}]\n"))
	require.NoError(t, err)
	_, err = f.Input()
	require.ErrorContains(t, err, "unknown matrix kind")

	_, err = bundle.Decode(strings.NewReader("level: 1\ncolour: red\n"))
	require.ErrorContains(t, err, "colour")

	f, err = bundle.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, f.Level)
}

func TestRoundTrip(t *testing.T) {
	in := decode(t, threeLevel)

	var buf bytes.Buffer
	require.NoError(t, bundle.Encode(&buf, bundle.FromInput(in)))
	back := decode(t, buf.String())

	assert.Equal(t, in.Level, back.Level)
	assert.Equal(t, in.Items.Types(), back.Items.Types())
	assert.Equal(t, in.Judgments, back.Judgments)

	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, bundle.Write(path, bundle.FromInput(in)))
	f, err := bundle.Read(path)
	require.NoError(t, err)
	again, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, in.Judgments, again.Judgments)

	_, err = bundle.Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGapsAndSkeleton(t *testing.T) {
	in := decode(t, threeLevel)

	gaps := bundle.Gaps(in)
	require.Len(t, gaps, 6)
	byKey := map[hierarchy.Key]bundle.Gap{}
	for _, g := range gaps {
		byKey[g.Key] = g
	}
	assert.True(t, byKey[hierarchy.TypesKey()].Complete())
	assert.True(t, byKey[hierarchy.CriteriaKey("Economic")].Complete(), "single item needs no judgments")
	assert.False(t, byKey[hierarchy.CriteriaKey("Economic")].Supplied)
	speed := byKey[hierarchy.AlternativesKey("Speed")]
	assert.False(t, speed.Supplied)
	assert.Equal(t, []pairwise.Pair{{Row: 0, Col: 1}}, speed.Missing)

	sk := bundle.Skeleton(in)
	assert.Len(t, in.Judgments, 4, "input untouched")
	assert.Equal(t, "1", sk.Judgments[hierarchy.AlternativesKey("Speed")][pairwise.Pair{Row: 0, Col: 1}])
	for _, g := range bundle.Gaps(sk) {
		assert.True(t, g.Complete(), g.Key.String())
	}

	res := hierarchy.Aggregate(sk)
	require.True(t, res.OK(), "%v", res.Err())

	assert.Nil(t, bundle.Gaps(hierarchy.Input{Level: 9}))
	assert.Nil(t, bundle.Gaps(hierarchy.Input{}))
}
