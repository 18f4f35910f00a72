package qbaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelationIndex_AddContains tests basic membership after adds.
func TestRelationIndex_AddContains(t *testing.T) {
	ri := NewRelationIndex()
	ri.Add("a", "b")
	ri.Add("a", "c")

	assert.True(t, ri.Contains("a", "b"))
	assert.True(t, ri.Contains("a", "c"))
	assert.False(t, ri.Contains("b", "a"), "relations are directed")
	assert.Equal(t, 2, ri.Len())
}

// TestRelationIndex_AddIdempotent tests that re-adding a pair is a no-op.
func TestRelationIndex_AddIdempotent(t *testing.T) {
	ri := NewRelationIndex()
	ri.Add("a", "b")
	ri.Add("a", "b")

	assert.Equal(t, 1, ri.Len())
	assert.Equal(t, []string{"b"}, ri.Patients("a"))
}

// TestRelationIndex_RemoveIdempotent tests that removing an absent pair
// is a no-op.
func TestRelationIndex_RemoveIdempotent(t *testing.T) {
	ri := NewRelationIndex(Relation{Agent: "a", Patient: "b"})
	ri.Remove("x", "y")
	ri.Remove("a", "b")
	ri.Remove("a", "b")

	assert.Equal(t, 0, ri.Len())
	assert.Empty(t, ri.Patients("a"))
	assert.Empty(t, ri.Agents("b"))
}

// TestRelationIndex_AdjacencyTranspose tests that the forward and reverse
// lookups stay the exact transpose of each other through a mutation
// sequence.
func TestRelationIndex_AdjacencyTranspose(t *testing.T) {
	ri := NewRelationIndex()
	ri.Add("a", "b")
	ri.Add("c", "b")
	ri.Add("a", "d")
	ri.Remove("a", "b")

	assert.Equal(t, []string{"d"}, ri.Patients("a"))
	assert.Equal(t, []string{"c"}, ri.Agents("b"))
	assert.Equal(t, []string{"a"}, ri.Agents("d"))

	for _, pair := range ri.Relations() {
		assert.Contains(t, ri.Patients(pair.Agent), pair.Patient)
		assert.Contains(t, ri.Agents(pair.Patient), pair.Agent)
	}
}

// TestRelationIndex_RelationsSorted tests that the pair set copy comes
// back in deterministic order.
func TestRelationIndex_RelationsSorted(t *testing.T) {
	ri := NewRelationIndex(
		Relation{Agent: "c", Patient: "a"},
		Relation{Agent: "a", Patient: "b"},
		Relation{Agent: "a", Patient: "a"},
	)

	want := []Relation{
		{Agent: "a", Patient: "a"},
		{Agent: "a", Patient: "b"},
		{Agent: "c", Patient: "a"},
	}
	assert.Equal(t, want, ri.Relations())
}

// TestRelationIndex_IsDisjoint tests overlap detection in both
// directions.
func TestRelationIndex_IsDisjoint(t *testing.T) {
	a := NewRelationIndex(Relation{Agent: "x", Patient: "y"})
	b := NewRelationIndex(Relation{Agent: "y", Patient: "x"})
	require.True(t, a.IsDisjoint(b))
	require.True(t, b.IsDisjoint(a))

	b.Add("x", "y")
	assert.False(t, a.IsDisjoint(b))
	assert.False(t, b.IsDisjoint(a))
}

// TestRelationIndex_Equal tests structural equality by pair-set content.
func TestRelationIndex_Equal(t *testing.T) {
	a := NewRelationIndex(Relation{Agent: "x", Patient: "y"}, Relation{Agent: "y", Patient: "z"})
	b := NewRelationIndex(Relation{Agent: "y", Patient: "z"}, Relation{Agent: "x", Patient: "y"})
	assert.True(t, a.Equal(b))

	b.Remove("x", "y")
	assert.False(t, a.Equal(b))
}

// TestRelationIndex_CopyIndependent tests that a copy shares no state
// with its source.
func TestRelationIndex_CopyIndependent(t *testing.T) {
	src := NewRelationIndex(Relation{Agent: "a", Patient: "b"})
	dup := src.Copy()
	require.True(t, src.Equal(dup))

	dup.Add("b", "c")
	dup.Remove("a", "b")

	assert.True(t, src.Contains("a", "b"))
	assert.False(t, src.Contains("b", "c"))
	assert.Equal(t, 1, src.Len())
}
