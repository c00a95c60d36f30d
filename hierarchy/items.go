// SPDX-License-Identifier: MIT

package hierarchy

import (
	"slices"
	"strings"
)

// CriterionType is a named, ordered group of existing criteria.
type CriterionType struct {
	Name     string
	Criteria []string
}

// Items is the ordered registry of alternatives, criteria and criteria
// types. The zero value is empty and ready to use.
//
// Names are trimmed; blanks and duplicates are rejected by returning false.
// Items is not safe for concurrent mutation.
type Items struct {
	alternatives []string
	criteria     []string
	types        []CriterionType
}

// AddAlternative appends an alternative.
func (it *Items) AddAlternative(name string) bool {
	return addName(&it.alternatives, name)
}

// AddCriterion appends a criterion.
func (it *Items) AddCriterion(name string) bool {
	return addName(&it.criteria, name)
}

// AddCriterionType declares a type over existing criteria. Members that are
// not declared criteria are dropped, repeated members kept once; the type
// is rejected when no member survives or the name is blank or taken.
// Exclusivity of criteria across types is not enforced.
func (it *Items) AddCriterionType(name string, members []string) bool {
	name = strings.TrimSpace(name)
	if name == "" || it.typeIndex(name) >= 0 {
		return false
	}

	kept := make([]string, 0, len(members))
	for _, m := range members {
		m = strings.TrimSpace(m)
		if slices.Contains(it.criteria, m) && !slices.Contains(kept, m) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return false
	}
	it.types = append(it.types, CriterionType{Name: name, Criteria: kept})

	return true
}

// RemoveAlternative removes the alternative at index i.
func (it *Items) RemoveAlternative(i int) bool {
	if i < 0 || i >= len(it.alternatives) {
		return false
	}
	it.alternatives = slices.Delete(it.alternatives, i, i+1)

	return true
}

// RemoveCriterion removes the criterion at index i and drops it from every
// type; types left without members are removed as well.
func (it *Items) RemoveCriterion(i int) bool {
	if i < 0 || i >= len(it.criteria) {
		return false
	}
	name := it.criteria[i]
	it.criteria = slices.Delete(it.criteria, i, i+1)

	types := it.types[:0]
	for _, t := range it.types {
		t.Criteria = slices.DeleteFunc(t.Criteria, func(c string) bool { return c == name })
		if len(t.Criteria) > 0 {
			types = append(types, t)
		}
	}
	clear(it.types[len(types):])
	it.types = types

	return true
}

// RemoveCriterionType removes the type called name.
func (it *Items) RemoveCriterionType(name string) bool {
	i := it.typeIndex(strings.TrimSpace(name))
	if i < 0 {
		return false
	}
	it.types = slices.Delete(it.types, i, i+1)

	return true
}

// Alternatives returns a copy of the alternatives in insertion order.
func (it *Items) Alternatives() []string { return slices.Clone(it.alternatives) }

// Criteria returns a copy of the criteria in insertion order.
func (it *Items) Criteria() []string { return slices.Clone(it.criteria) }

// Types returns a deep copy of the criteria types in insertion order.
func (it *Items) Types() []CriterionType {
	out := make([]CriterionType, len(it.types))
	for i, t := range it.types {
		out[i] = CriterionType{Name: t.Name, Criteria: slices.Clone(t.Criteria)}
	}

	return out
}

// TypeNames returns the criteria type names in insertion order.
func (it *Items) TypeNames() []string {
	out := make([]string, len(it.types))
	for i, t := range it.types {
		out[i] = t.Name
	}

	return out
}

// Clone returns an independent copy of the registry.
func (it *Items) Clone() Items {
	return Items{
		alternatives: it.Alternatives(),
		criteria:     it.Criteria(),
		types:        it.Types(),
	}
}

func (it *Items) typeIndex(name string) int {
	return slices.IndexFunc(it.types, func(t CriterionType) bool { return t.Name == name })
}

func addName(list *[]string, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(*list, name) {
		return false
	}
	*list = append(*list, name)

	return true
}
