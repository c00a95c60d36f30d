// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the number of hierarchy levels a run aggregates over.
type Level int

const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
)

// Valid reports whether l is 1, 2 or 3.
func (l Level) Valid() bool { return l >= Level1 && l <= Level3 }

// String renders "level N".
func (l Level) String() string { return "level " + strconv.Itoa(int(l)) }

// ParseLevel accepts "1", "2" or "3".
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}

	return Level(n), nil
}

// Kind is the hierarchy tier a comparison matrix belongs to.
type Kind int

const (
	// KindTypes compares criteria types.
	KindTypes Kind = iota + 1

	// KindCriteria compares criteria, either all of them (level 2) or the
	// members of one type (level 3).
	KindCriteria

	// KindAlternatives compares alternatives, either alone (level 1) or
	// under one criterion.
	KindAlternatives
)

var kindNames = map[Kind]string{
	KindTypes:        "types",
	KindCriteria:     "criteria",
	KindAlternatives: "alternatives",
}

// String returns the bundle spelling of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("hierarchy: unknown matrix kind %q", s)
}

// Key identifies one comparison matrix of a run.
type Key struct {
	Kind Kind
	Name string
}

// TypesKey addresses the criteria-type matrix (level 3).
func TypesKey() Key { return Key{Kind: KindTypes} }

// CriteriaKey addresses the criteria matrix of a type, or the single
// criteria matrix of level 2 when typeName is empty.
func CriteriaKey(typeName string) Key { return Key{Kind: KindCriteria, Name: typeName} }

// AlternativesKey addresses the alternatives matrix under a criterion, or
// the single level-1 matrix when criterion is empty.
func AlternativesKey(criterion string) Key {
	return Key{Kind: KindAlternatives, Name: criterion}
}

// String renders the legacy display label.
func (k Key) String() string {
	switch k.Kind {
	case KindTypes:
		return "criteria_types"
	case KindCriteria, KindAlternatives:
		if k.Name == "" {
			return k.Kind.String()
		}

		return k.Kind.String() + "_" + k.Name
	default:
		return fmt.Sprintf("%s(%s)", k.Kind, k.Name)
	}
}
