// SPDX-License-Identifier: MIT

package bundle

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/scale"
)

// Gap describes how complete one required matrix is.
type Gap struct {
	Key      hierarchy.Key
	Items    []string
	Supplied bool
	Missing  []pairwise.Pair
	// Err is set when the items of the matrix cannot be resolved.
	Err error
}

// Complete reports whether every upper-triangle cell has a judgment.
func (g Gap) Complete() bool { return g.Err == nil && len(g.Missing) == 0 }

// Gaps lists every matrix the input's level requires with its missing pairs.
// An invalid level yields nil.
func Gaps(in hierarchy.Input) []Gap {
	keys := hierarchy.RequiredKeys(in.Items, in.Level)
	if len(keys) == 0 {
		return nil
	}
	out := make([]Gap, 0, len(keys))
	for _, k := range keys {
		g := Gap{Key: k}
		g.Items, g.Err = hierarchy.ItemsFor(in.Items, in.Level, k)
		j, ok := in.Judgments[k]
		g.Supplied = ok
		if g.Err == nil {
			g.Missing = pairwise.Missing(len(g.Items), j)
		}
		out = append(out, g)
	}

	return out
}

// Skeleton returns in with every required matrix present and every missing
// upper-triangle cell set to equal importance, ready to be edited by hand.
// in is not modified.
func Skeleton(in hierarchy.Input) hierarchy.Input {
	out := hierarchy.Input{
		Items:     in.Items.Clone(),
		Level:     in.Level,
		Judgments: make(map[hierarchy.Key]pairwise.Judgments, len(in.Judgments)),
	}
	for k, j := range in.Judgments {
		cp := make(pairwise.Judgments, len(j))
		for p, v := range j {
			cp[p] = v
		}
		out.Judgments[k] = cp
	}

	for _, g := range Gaps(in) {
		if g.Err != nil {
			continue
		}
		j, ok := out.Judgments[g.Key]
		if !ok {
			j = pairwise.Judgments{}
			out.Judgments[g.Key] = j
		}
		for _, p := range g.Missing {
			j[p] = scale.Equal
		}
	}

	return out
}

func orderedKeys(in hierarchy.Input) []hierarchy.Key {
	keys := hierarchy.RequiredKeys(in.Items, in.Level)
	present := keys[:0:0]
	for _, k := range keys {
		if _, ok := in.Judgments[k]; ok {
			present = append(present, k)
		}
	}
	var extra []hierarchy.Key
	for k := range in.Judgments {
		if !slices.Contains(keys, k) {
			extra = append(extra, k)
		}
	}
	slices.SortFunc(extra, func(a, b hierarchy.Key) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.Name, b.Name))
	})

	return append(present, extra...)
}

func sortedPairs(j pairwise.Judgments) []pairwise.Pair {
	pairs := make([]pairwise.Pair, 0, len(j))
	for p := range j {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b pairwise.Pair) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return pairs
}
