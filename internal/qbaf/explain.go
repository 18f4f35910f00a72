package qbaf

// This file answers the comparative question: given a modified framework
// (the receiver, QBF') and a reference framework (other, QBF) that
// disagree on the relative strength of two focal arguments, which sets of
// arguments explain the disagreement?
//
// Two explanation notions are implemented:
//
//   - SSI (Sufficient Strength Inconsistency): the set alone is
//     responsible. Reversing everything OUTSIDE the set back to the
//     reference still leaves the orderings inconsistent.
//   - CSI (Counterfactual Strength Inconsistency): additionally,
//     reversing exactly the set to the reference resolves the
//     inconsistency.
//
// The minimal-explanation searches are exact. They enumerate subsets of a
// candidate set by increasing size, pruning supersets of already-accepted
// explanations, so the result is an antichain containing every minimal
// explanation. Worst case is exponential in the number of candidates.

// StrengthConsistent reports whether the three-way comparison (less,
// greater, equal) of the final strengths of a and b agrees between f and
// other. Errors from strength computation (unknown focal argument, cyclic
// graph) are surfaced unchanged.
func (f *Framework) StrengthConsistent(other *Framework, a, b string) (bool, error) {
	fa, err := f.FinalStrength(a)
	if err != nil {
		return false, err
	}
	fb, err := f.FinalStrength(b)
	if err != nil {
		return false, err
	}
	oa, err := other.FinalStrength(a)
	if err != nil {
		return false, err
	}
	ob, err := other.FinalStrength(b)
	if err != nil {
		return false, err
	}
	switch {
	case fa < fb:
		return oa < ob, nil
	case fa > fb:
		return oa > ob, nil
	default:
		return oa == ob, nil
	}
}

// Reversal builds the hybrid framework of f (QBF') reversed towards other
// (QBF) with respect to set.
//
// The result's argument universe is (f.Arguments ∪ set) minus the members
// of set that other does not have: reversing an argument the reference
// never had deletes it. Arguments in set take other's initial strength
// (when other has them) and other's outgoing attack/support edges;
// arguments outside set keep f's strength and outgoing edges. All edges
// are restricted to the universe.
//
// The result is built through the validated constructor. Membership holds
// because every edge is filtered against the universe, and disjointness
// holds because each argument's outgoing edges are taken wholly from one
// framework, which itself satisfies disjointness.
//
// Fails with INVALID_REVERSAL_SET if set is not a subset of the union of
// both frameworks' arguments.
func (f *Framework) Reversal(other *Framework, set ArgSet) (*Framework, error) {
	for name := range set {
		if !f.ContainsArgument(name) && !other.ContainsArgument(name) {
			return nil, NewInvalidReversalSetError(name)
		}
	}

	universe := make(map[string]struct{}, len(f.arguments)+len(set))
	for name := range f.arguments {
		if set.Contains(name) && !other.ContainsArgument(name) {
			continue
		}
		universe[name] = struct{}{}
	}
	for name := range set {
		if other.ContainsArgument(name) {
			universe[name] = struct{}{}
		}
	}

	names := sortedNames(universe)
	strengths := make([]float64, len(names))
	var attacks, supports []Relation
	for i, name := range names {
		src := f
		if set.Contains(name) {
			src = other
		}
		strengths[i] = src.initial[name]
		for _, patient := range src.attacks.Patients(name) {
			if _, ok := universe[patient]; ok {
				attacks = append(attacks, Relation{Agent: name, Patient: patient})
			}
		}
		for _, patient := range src.supports.Patients(name) {
			if _, ok := universe[patient]; ok {
				supports = append(supports, Relation{Agent: name, Patient: patient})
			}
		}
	}
	return New(names, strengths, attacks, supports)
}

// IsSSIExplanation reports whether set is a Sufficient Strength
// Inconsistency explanation of the (a, b) ordering disagreement between f
// (QBF') and other (QBF).
//
// When the frameworks already agree on (a, b), only the empty set
// qualifies (trivially). Otherwise set qualifies iff reversing everything
// outside set back to other's view still leaves other and the reversal
// inconsistent on (a, b): the arguments in set are sufficient on their
// own to account for the disagreement.
func (f *Framework) IsSSIExplanation(other *Framework, set ArgSet, a, b string) (bool, error) {
	consistent, err := f.StrengthConsistent(other, a, b)
	if err != nil {
		return false, err
	}
	if consistent {
		return len(set) == 0, nil
	}

	rest := make(ArgSet, len(f.arguments)+len(other.arguments))
	for name := range f.arguments {
		if !set.Contains(name) {
			rest[name] = struct{}{}
		}
	}
	for name := range other.arguments {
		if !set.Contains(name) {
			rest[name] = struct{}{}
		}
	}
	rev, err := f.Reversal(other, rest)
	if err != nil {
		return false, err
	}
	consistent, err = other.StrengthConsistent(rev, a, b)
	if err != nil {
		return false, err
	}
	return !consistent, nil
}

// IsCSIExplanation reports whether set is a Counterfactual Strength
// Inconsistency explanation of the (a, b) disagreement between f (QBF')
// and other (QBF): reversing exactly set to other's view resolves the
// inconsistency, and set is also a valid SSI explanation.
func (f *Framework) IsCSIExplanation(other *Framework, set ArgSet, a, b string) (bool, error) {
	rev, err := f.Reversal(other, set)
	if err != nil {
		return false, err
	}
	consistent, err := other.StrengthConsistent(rev, a, b)
	if err != nil {
		return false, err
	}
	if !consistent {
		return false, nil
	}
	return f.IsSSIExplanation(other, set, a, b)
}

// MinimalSSIExplanations returns every minimal SSI explanation of the
// (a, b) disagreement between f and other. The result is an antichain:
// no returned set is a subset of another. Sets are ordered by size, then
// lexicographically, so the output is reproducible.
//
// The search is exponential in the number of candidate arguments in the
// worst case; superset pruning against already-accepted explanations is
// the only optimization.
func (f *Framework) MinimalSSIExplanations(other *Framework, a, b string) ([]ArgSet, error) {
	return f.minimalExplanations(other, a, b, func(set ArgSet) (bool, error) {
		return f.IsSSIExplanation(other, set, a, b)
	})
}

// MinimalCSIExplanations returns every minimal CSI explanation of the
// (a, b) disagreement between f and other, under the same ordering and
// complexity contract as MinimalSSIExplanations.
func (f *Framework) MinimalCSIExplanations(other *Framework, a, b string) ([]ArgSet, error) {
	return f.minimalExplanations(other, a, b, func(set ArgSet) (bool, error) {
		return f.IsCSIExplanation(other, set, a, b)
	})
}

// minimalExplanations runs the shared generate-and-test search. pred is
// the SSI or CSI predicate over candidate subsets.
func (f *Framework) minimalExplanations(other *Framework, a, b string, pred func(ArgSet) (bool, error)) ([]ArgSet, error) {
	ok, err := pred(NewArgSet())
	if err != nil {
		return nil, err
	}
	if ok {
		return []ArgSet{NewArgSet()}, nil
	}

	influential := f.influencers(a, b).Union(other.influencers(a, b))
	candidates := make([]string, 0, len(influential))
	for _, name := range influential.Names() {
		cand, err := f.isCandidate(other, name)
		if err != nil {
			return nil, err
		}
		if cand {
			candidates = append(candidates, name)
		}
	}

	var accepted []ArgSet
	for size := 1; size <= len(candidates); size++ {
		err := forEachCombination(candidates, size, func(subset []string) error {
			set := NewArgSet(subset...)
			for _, exp := range accepted {
				if exp.SubsetOf(set) {
					return nil
				}
			}
			ok, err := pred(set)
			if err != nil {
				return err
			}
			if ok {
				accepted = append(accepted, set)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sortArgSets(accepted)
	return accepted, nil
}

// influencers returns the arguments that influence any of the seeds
// directly or transitively, following attack/support edges backwards from
// patient to agent. Seeds that are part of the framework are included in
// the result; seeds the framework does not have are skipped.
//
// Iterative worklist traversal; each argument is visited at most once.
func (f *Framework) influencers(seeds ...string) ArgSet {
	result := make(ArgSet)
	var stack []string
	for _, seed := range seeds {
		if f.ContainsArgument(seed) {
			stack = append(stack, seed)
		}
	}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if result.Contains(name) {
			continue
		}
		result.Add(name)
		for _, agent := range f.attacks.Agents(name) {
			if !result.Contains(agent) {
				stack = append(stack, agent)
			}
		}
		for _, agent := range f.supports.Agents(name) {
			if !result.Contains(agent) {
				stack = append(stack, agent)
			}
		}
	}
	return result
}

// isCandidate reports whether name may belong to an explanation: it is
// missing from one of the frameworks, or its initial strength, final
// strength, or set of directly attacked/supported arguments differs
// between them. Arguments identical in both frameworks under all four
// views can never flip the focal ordering on their own.
func (f *Framework) isCandidate(other *Framework, name string) (bool, error) {
	if !f.ContainsArgument(name) || !other.ContainsArgument(name) {
		return true, nil
	}
	if f.initial[name] != other.initial[name] {
		return true, nil
	}
	ffinal, err := f.FinalStrength(name)
	if err != nil {
		return false, err
	}
	ofinal, err := other.FinalStrength(name)
	if err != nil {
		return false, err
	}
	if ffinal != ofinal {
		return true, nil
	}
	if !equalNames(f.attacks.Patients(name), other.attacks.Patients(name)) {
		return true, nil
	}
	if !equalNames(f.supports.Patients(name), other.supports.Patients(name)) {
		return true, nil
	}
	return false, nil
}

// equalNames compares two sorted name slices.
func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// forEachCombination invokes fn for every size-k combination of items, in
// lexicographic index order. items must not be mutated by fn. Returning a
// non-nil error aborts the enumeration.
func forEachCombination(items []string, k int, fn func([]string) error) error {
	if k <= 0 || k > len(items) {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	subset := make([]string, k)
	for {
		for i, j := range idx {
			subset[i] = items[j]
		}
		if err := fn(subset); err != nil {
			return err
		}

		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
