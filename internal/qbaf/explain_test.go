package qbaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference builds the shared base framework: b attacks a, c supports a,
// all initial strengths 1, so every final strength is 1.
func reference(t *testing.T) *Framework {
	t.Helper()
	return mustFramework(t,
		[]string{"a", "b", "c"}, []float64{1, 1, 1},
		[]Relation{{Agent: "b", Patient: "a"}},
		[]Relation{{Agent: "c", Patient: "a"}},
	)
}

// boostedAttacker builds the reference with b's initial strength raised
// to 2, dropping a's final strength to 0.
func boostedAttacker(t *testing.T) *Framework {
	t.Helper()
	fw := reference(t)
	require.NoError(t, fw.SetInitialStrength("b", 2))
	return fw
}

// TestStrengthConsistent tests agreement and disagreement of the
// three-way ordering between two frameworks.
func TestStrengthConsistent(t *testing.T) {
	ref := reference(t)

	// A framework agrees with itself on any pair.
	ok, err := ref.StrengthConsistent(ref.Copy(), "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	// Reference has a = b; the boosted framework has a < b.
	mod := boostedAttacker(t)
	ok, err = mod.StrengthConsistent(ref, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Both orderings strictly agree on (c, b) in reference vs itself,
	// and disagree between boosted and reference: ref c = b, mod c < b.
	ok, err = mod.StrengthConsistent(ref, "c", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStrengthConsistent_Errors tests propagation of strength errors.
func TestStrengthConsistent_Errors(t *testing.T) {
	ref := reference(t)

	_, err := ref.StrengthConsistent(ref, "ghost", "b")
	assert.True(t, IsUnknownArgumentError(err))

	cyclic := mustFramework(t,
		[]string{"a", "b"}, []float64{1, 1},
		[]Relation{{Agent: "a", Patient: "b"}, {Agent: "b", Patient: "a"}},
		nil,
	)
	_, err = cyclic.StrengthConsistent(ref, "a", "b")
	assert.True(t, IsCyclicGraphError(err))
}

// TestReversal_EmptySetIsIdentity tests that reversing nothing yields a
// framework structurally equal to the receiver.
func TestReversal_EmptySetIsIdentity(t *testing.T) {
	mod := boostedAttacker(t)
	ref := reference(t)

	rev, err := mod.Reversal(ref, NewArgSet())
	require.NoError(t, err)
	assert.True(t, rev.Equal(mod))
}

// TestReversal_FullSetYieldsOther tests that reversing the whole argument
// union reconstructs the reference framework.
func TestReversal_FullSetYieldsOther(t *testing.T) {
	mod := boostedAttacker(t)
	ref := reference(t)

	rev, err := mod.Reversal(ref, NewArgSet("a", "b", "c"))
	require.NoError(t, err)
	assert.True(t, rev.Equal(ref))
}

// TestReversal_InvalidSet tests rejection of sets outside the union of
// both frameworks' arguments.
func TestReversal_InvalidSet(t *testing.T) {
	mod := boostedAttacker(t)
	ref := reference(t)

	_, err := mod.Reversal(ref, NewArgSet("ghost"))
	assert.True(t, IsInvalidReversalSetError(err))
}

// TestReversal_DeletesArgumentsUnknownToOther tests that reversing an
// argument the other framework lacks removes it, together with the edges
// that would dangle.
func TestReversal_DeletesArgumentsUnknownToOther(t *testing.T) {
	ref := reference(t)
	mod := boostedAttacker(t)
	mod.AddArgument("d", 1)
	require.NoError(t, mod.AddAttack("d", "b"))

	rev, err := mod.Reversal(ref, NewArgSet("d"))
	require.NoError(t, err)

	assert.False(t, rev.ContainsArgument("d"))
	assert.Equal(t, []string{"a", "b", "c"}, rev.Arguments())
	assert.Empty(t, rev.AttackersOf("b"))
	// Arguments outside the set keep the receiver's strengths.
	s, err := rev.InitialStrength("b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
}

// TestReversal_SwapsStrengthsAndEdges tests the per-argument swap of
// initial strength and outgoing edges.
func TestReversal_SwapsStrengthsAndEdges(t *testing.T) {
	ref := reference(t)

	// Modified framework: b supports a instead of attacking it, with a
	// different strength.
	mod := mustFramework(t,
		[]string{"a", "b", "c"}, []float64{1, 4, 1},
		nil,
		[]Relation{{Agent: "b", Patient: "a"}, {Agent: "c", Patient: "a"}},
	)

	rev, err := mod.Reversal(ref, NewArgSet("b"))
	require.NoError(t, err)

	// b takes the reference's strength and reference's outgoing attack.
	s, err := rev.InitialStrength("b")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
	assert.True(t, rev.ContainsAttack("b", "a"))
	assert.False(t, rev.ContainsSupport("b", "a"))
	// c stays as in the receiver.
	assert.True(t, rev.ContainsSupport("c", "a"))
	assert.True(t, rev.Equal(reference(t)))
}

// TestIsSSIExplanation_EmptySetMatchesConsistency tests the property
// IsSSIExplanation(other, {}, a, b) == StrengthConsistent(other, a, b).
func TestIsSSIExplanation_EmptySetMatchesConsistency(t *testing.T) {
	ref := reference(t)

	for _, mod := range []*Framework{reference(t), boostedAttacker(t)} {
		consistent, err := mod.StrengthConsistent(ref, "a", "b")
		require.NoError(t, err)
		ssi, err := mod.IsSSIExplanation(ref, NewArgSet(), "a", "b")
		require.NoError(t, err)
		assert.Equal(t, consistent, ssi)
	}
}

// TestIsSSIExplanation_ConsistentRejectsNonEmpty tests that on
// already-consistent frameworks only the empty set qualifies.
func TestIsSSIExplanation_ConsistentRejectsNonEmpty(t *testing.T) {
	ref := reference(t)

	ok, err := reference(t).IsSSIExplanation(ref, NewArgSet("b"), "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsSSIExplanation_BoostedAttacker tests the predicate on the
// boosted-attacker disagreement: {b} is responsible, {a} is not.
func TestIsSSIExplanation_BoostedAttacker(t *testing.T) {
	ref := reference(t)
	mod := boostedAttacker(t)

	ok, err := mod.IsSSIExplanation(ref, NewArgSet("b"), "a", "b")
	require.NoError(t, err)
	assert.True(t, ok, "{b} carries the strength change")

	ok, err = mod.IsSSIExplanation(ref, NewArgSet("a"), "a", "b")
	require.NoError(t, err)
	assert.False(t, ok, "restoring everything but {a} already fixes the ordering")
}

// TestIsCSIExplanation_BoostedAttacker tests the counterfactual
// predicate: reversing {b} to the reference resolves the inconsistency.
func TestIsCSIExplanation_BoostedAttacker(t *testing.T) {
	ref := reference(t)
	mod := boostedAttacker(t)

	ok, err := mod.IsCSIExplanation(ref, NewArgSet("b"), "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mod.IsCSIExplanation(ref, NewArgSet("a"), "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMinimalSSIExplanations_TrivialWhenConsistent tests the {∅} result
// on consistent frameworks.
func TestMinimalSSIExplanations_TrivialWhenConsistent(t *testing.T) {
	ref := reference(t)

	got, err := reference(t).MinimalSSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])

	got, err = reference(t).MinimalCSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

// TestMinimalExplanations_BoostedAttacker tests the full search on the
// boosted-attacker scenario: the only minimal SSI and CSI explanation is
// {b}.
func TestMinimalExplanations_BoostedAttacker(t *testing.T) {
	ref := reference(t)
	mod := boostedAttacker(t)

	ssi, err := mod.MinimalSSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, ssi, 1)
	assert.True(t, ssi[0].Equal(NewArgSet("b")), "got %v", ssi)

	csi, err := mod.MinimalCSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, csi, 1)
	assert.True(t, csi[0].Equal(NewArgSet("b")))
}

// TestMinimalExplanations_NewArgument tests the search when the
// disagreement stems from an argument only one framework has.
func TestMinimalExplanations_NewArgument(t *testing.T) {
	ref := reference(t)
	mod := reference(t)
	mod.AddArgument("d", 1)
	require.NoError(t, mod.AddAttack("d", "b"))

	// mod finals: d=1, b=0, a=1-0+1=2: ordering flips from a=b to a>b.
	ssi, err := mod.MinimalSSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, ssi, 1)
	assert.True(t, ssi[0].Equal(NewArgSet("d")), "got %v", ssi)

	csi, err := mod.MinimalCSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, csi, 1)
	assert.True(t, csi[0].Equal(NewArgSet("d")))
}

// TestMinimalExplanations_SplitCause tests a disagreement caused by two
// independent strength changes: each singleton is sufficient on its own,
// but only the pair is counterfactually corrective.
func TestMinimalExplanations_SplitCause(t *testing.T) {
	ref := mustFramework(t, []string{"a", "b"}, []float64{1, 1}, nil, nil)
	mod := mustFramework(t, []string{"a", "b"}, []float64{2, 0}, nil, nil)

	ssi, err := mod.MinimalSSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, ssi, 2)
	assert.True(t, ssi[0].Equal(NewArgSet("a")), "got %v", ssi)
	assert.True(t, ssi[1].Equal(NewArgSet("b")))

	csi, err := mod.MinimalCSIExplanations(ref, "a", "b")
	require.NoError(t, err)
	require.Len(t, csi, 1)
	assert.True(t, csi[0].Equal(NewArgSet("a", "b")), "got %v", csi)
}

// TestMinimalExplanations_Antichain tests the structural guarantees on a
// busier disagreement: every returned set passes its predicate, no
// returned set is a subset of another, and no proper subset of a returned
// set passes.
func TestMinimalExplanations_Antichain(t *testing.T) {
	ref := mustFramework(t,
		[]string{"a", "b", "c", "d"}, []float64{1, 1, 1, 1},
		[]Relation{{Agent: "b", Patient: "a"}, {Agent: "d", Patient: "b"}},
		[]Relation{{Agent: "c", Patient: "a"}},
	)
	mod := mustFramework(t,
		[]string{"a", "b", "c", "d"}, []float64{1, 2, 0.5, 0},
		[]Relation{{Agent: "b", Patient: "a"}, {Agent: "d", Patient: "b"}},
		[]Relation{{Agent: "c", Patient: "a"}},
	)

	for _, kind := range []string{"ssi", "csi"} {
		var (
			sets []ArgSet
			err  error
			pred func(ArgSet) (bool, error)
		)
		if kind == "ssi" {
			sets, err = mod.MinimalSSIExplanations(ref, "a", "b")
			pred = func(s ArgSet) (bool, error) { return mod.IsSSIExplanation(ref, s, "a", "b") }
		} else {
			sets, err = mod.MinimalCSIExplanations(ref, "a", "b")
			pred = func(s ArgSet) (bool, error) { return mod.IsCSIExplanation(ref, s, "a", "b") }
		}
		require.NoError(t, err, kind)
		require.NotEmpty(t, sets, kind)

		for i, set := range sets {
			ok, err := pred(set)
			require.NoError(t, err)
			assert.True(t, ok, "%s: returned set %v fails its predicate", kind, set)

			// Antichain: no returned set contains another.
			for j, other := range sets {
				if i == j {
					continue
				}
				assert.False(t, other.SubsetOf(set), "%s: %v ⊆ %v", kind, other, set)
			}

			// Minimality: dropping any single member must break it.
			for _, name := range set.Names() {
				smaller := set.Copy()
				delete(smaller, name)
				ok, err := pred(smaller)
				require.NoError(t, err)
				assert.False(t, ok, "%s: %v is not minimal, %v suffices", kind, set, smaller)
			}
		}
	}
}

// TestArgSet tests the small set helper.
func TestArgSet(t *testing.T) {
	s := NewArgSet("b", "a")
	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.Equal(t, "{a, b}", s.String())
	assert.True(t, NewArgSet("a").SubsetOf(s))
	assert.False(t, s.SubsetOf(NewArgSet("a")))
	assert.True(t, s.Equal(NewArgSet("a", "b")))
	assert.False(t, s.Equal(NewArgSet("a", "c")))
	assert.True(t, s.Union(NewArgSet("c")).Equal(NewArgSet("a", "b", "c")))

	dup := s.Copy()
	dup.Add("z")
	assert.False(t, s.Contains("z"))
}
