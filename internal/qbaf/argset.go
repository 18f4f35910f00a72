package qbaf

import (
	"sort"
	"strings"
)

// ArgSet is a set of argument names. Explanation predicates take ArgSets
// as input and the minimal-explanation searches return them.
type ArgSet map[string]struct{}

// NewArgSet creates a set holding the given names.
func NewArgSet(names ...string) ArgSet {
	s := make(ArgSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Contains reports whether name is a member.
func (s ArgSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name.
func (s ArgSet) Add(name string) {
	s[name] = struct{}{}
}

// SubsetOf reports whether every member of s is a member of other.
func (s ArgSet) SubsetOf(other ArgSet) bool {
	if len(s) > len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same names.
func (s ArgSet) Equal(other ArgSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Union returns a new set holding the members of both sets.
func (s ArgSet) Union(other ArgSet) ArgSet {
	out := make(ArgSet, len(s)+len(other))
	for name := range s {
		out[name] = struct{}{}
	}
	for name := range other {
		out[name] = struct{}{}
	}
	return out
}

// Copy returns an independent set with the same members.
func (s ArgSet) Copy() ArgSet {
	out := make(ArgSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Names returns the members sorted by name.
func (s ArgSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// String returns {a, b, c} with members sorted.
func (s ArgSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}

// sortArgSets orders a slice of sets by size, then lexicographically by
// sorted member names. Used to make search results reproducible.
func sortArgSets(sets []ArgSet) {
	sort.Slice(sets, func(i, j int) bool {
		if len(sets[i]) != len(sets[j]) {
			return len(sets[i]) < len(sets[j])
		}
		a, b := sets[i].Names(), sets[j].Names()
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}
