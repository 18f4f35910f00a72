package qbaf

import "sort"

// Relation is a directed (agent, patient) pair. The agent initiates the
// effect, the patient receives it: (attacker, attacked) in an attack
// index, (supporter, supported) in a support index.
type Relation struct {
	Agent   string
	Patient string
}

// RelationIndex stores a set of directed relations with bidirectional
// adjacency lookup. The same type backs both the attack and the support
// relation of a framework.
//
// INVARIANT: the two adjacency maps are always the exact transpose of the
// pair set. Every Add/Remove updates all three structures together, so
// Patients, Agents and Contains run in time proportional to their result
// rather than to the whole relation set.
type RelationIndex struct {
	pairs    map[Relation]struct{}
	patients map[string]map[string]struct{} // agent -> set of patients
	agents   map[string]map[string]struct{} // patient -> set of agents
}

// NewRelationIndex creates an index holding the given pairs. Duplicate
// pairs collapse into one.
func NewRelationIndex(pairs ...Relation) *RelationIndex {
	ri := &RelationIndex{
		pairs:    make(map[Relation]struct{}, len(pairs)),
		patients: make(map[string]map[string]struct{}),
		agents:   make(map[string]map[string]struct{}),
	}
	for _, p := range pairs {
		ri.Add(p.Agent, p.Patient)
	}
	return ri
}

// Add inserts the relation (agent, patient). Adding a pair that is already
// present is a no-op.
func (ri *RelationIndex) Add(agent, patient string) {
	pair := Relation{Agent: agent, Patient: patient}
	if _, ok := ri.pairs[pair]; ok {
		return
	}
	ri.pairs[pair] = struct{}{}
	if ri.patients[agent] == nil {
		ri.patients[agent] = make(map[string]struct{})
	}
	ri.patients[agent][patient] = struct{}{}
	if ri.agents[patient] == nil {
		ri.agents[patient] = make(map[string]struct{})
	}
	ri.agents[patient][agent] = struct{}{}
}

// Remove deletes the relation (agent, patient). Removing an absent pair is
// a no-op.
func (ri *RelationIndex) Remove(agent, patient string) {
	pair := Relation{Agent: agent, Patient: patient}
	if _, ok := ri.pairs[pair]; !ok {
		return
	}
	delete(ri.pairs, pair)
	delete(ri.patients[agent], patient)
	if len(ri.patients[agent]) == 0 {
		delete(ri.patients, agent)
	}
	delete(ri.agents[patient], agent)
	if len(ri.agents[patient]) == 0 {
		delete(ri.agents, patient)
	}
}

// Contains reports whether the relation (agent, patient) is present.
func (ri *RelationIndex) Contains(agent, patient string) bool {
	_, ok := ri.pairs[Relation{Agent: agent, Patient: patient}]
	return ok
}

// Patients returns the arguments that undergo the effect initiated by
// agent, sorted by name. The slice is a copy; an agent with no relations
// yields an empty slice.
func (ri *RelationIndex) Patients(agent string) []string {
	return sortedNames(ri.patients[agent])
}

// Agents returns the arguments that initiate an effect undergone by
// patient, sorted by name. The slice is a copy.
func (ri *RelationIndex) Agents(patient string) []string {
	return sortedNames(ri.agents[patient])
}

// Relations returns the full pair set as a copy, sorted by agent then
// patient.
func (ri *RelationIndex) Relations() []Relation {
	out := make([]Relation, 0, len(ri.pairs))
	for pair := range ri.pairs {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Agent != out[j].Agent {
			return out[i].Agent < out[j].Agent
		}
		return out[i].Patient < out[j].Patient
	})
	return out
}

// Len returns the number of relations in the index.
func (ri *RelationIndex) Len() int {
	return len(ri.pairs)
}

// IsDisjoint reports whether the two indices share no relation.
func (ri *RelationIndex) IsDisjoint(other *RelationIndex) bool {
	// Probe the smaller set against the larger one.
	small, large := ri, other
	if len(small.pairs) > len(large.pairs) {
		small, large = large, small
	}
	for pair := range small.pairs {
		if _, ok := large.pairs[pair]; ok {
			return false
		}
	}
	return true
}

// Equal reports whether both indices hold exactly the same relation set.
func (ri *RelationIndex) Equal(other *RelationIndex) bool {
	if len(ri.pairs) != len(other.pairs) {
		return false
	}
	for pair := range ri.pairs {
		if _, ok := other.pairs[pair]; !ok {
			return false
		}
	}
	return true
}

// Copy returns an independent index holding the same pairs.
func (ri *RelationIndex) Copy() *RelationIndex {
	out := NewRelationIndex()
	for pair := range ri.pairs {
		out.Add(pair.Agent, pair.Patient)
	}
	return out
}

// sortedNames flattens a name set into a sorted slice. A nil set yields an
// empty, non-nil slice.
func sortedNames(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
