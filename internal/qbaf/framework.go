package qbaf

// Framework is a quantitative bipolar argumentation framework: a set of
// arguments, an initial strength per argument, an attack relation and a
// support relation.
//
// INVARIANTS, enforced at construction and on every mutation:
//  1. Every relation endpoint belongs to the argument set.
//  2. The attack and support relation sets are disjoint.
//
// Final strengths are computed lazily and cached; every mutating call
// marks the cache stale so the next strength query recomputes the whole
// mapping. See strength.go.
type Framework struct {
	arguments map[string]struct{}
	initial   map[string]float64
	attacks   *RelationIndex
	supports  *RelationIndex

	// Strength cache. final is valid only while dirty is false; every
	// mutating path sets dirty, no exceptions.
	final map[string]float64
	dirty bool
}

// New constructs a validated framework. The initialStrengths slice is
// parallel to arguments; duplicate argument names collapse, keeping the
// last strength given for a name.
//
// Fails with INVALID_ARGUMENT_LIST on mismatched slice lengths, with
// INVALID_RELATION_ENDPOINT if any relation references a name outside
// arguments, and with NON_DISJOINT_RELATIONS if the attack and support
// sets share a pair.
func New(arguments []string, initialStrengths []float64, attacks, supports []Relation) (*Framework, error) {
	if len(arguments) != len(initialStrengths) {
		return nil, NewInvalidArgumentListError(len(arguments), len(initialStrengths))
	}

	f := &Framework{
		arguments: make(map[string]struct{}, len(arguments)),
		initial:   make(map[string]float64, len(arguments)),
		attacks:   NewRelationIndex(attacks...),
		supports:  NewRelationIndex(supports...),
		dirty:     true,
	}
	for i, name := range arguments {
		f.arguments[name] = struct{}{}
		f.initial[name] = initialStrengths[i]
	}

	for _, pair := range f.attacks.Relations() {
		if err := f.checkEndpoints(pair); err != nil {
			return nil, err
		}
	}
	for _, pair := range f.supports.Relations() {
		if err := f.checkEndpoints(pair); err != nil {
			return nil, err
		}
		if f.attacks.Contains(pair.Agent, pair.Patient) {
			return nil, NewNonDisjointRelationsError(pair.Agent, pair.Patient)
		}
	}
	return f, nil
}

// checkEndpoints verifies that both endpoints of pair are arguments.
func (f *Framework) checkEndpoints(pair Relation) error {
	if _, ok := f.arguments[pair.Agent]; !ok {
		return NewInvalidEndpointError(pair.Agent, pair.Patient, pair.Agent)
	}
	if _, ok := f.arguments[pair.Patient]; !ok {
		return NewInvalidEndpointError(pair.Agent, pair.Patient, pair.Patient)
	}
	return nil
}

// Arguments returns the argument names as a sorted copy.
func (f *Framework) Arguments() []string {
	return sortedNames(f.arguments)
}

// ContainsArgument reports whether name is an argument of the framework.
func (f *Framework) ContainsArgument(name string) bool {
	_, ok := f.arguments[name]
	return ok
}

// InitialStrength returns the initial strength of name. Fails with
// UNKNOWN_ARGUMENT if name is not part of the framework.
func (f *Framework) InitialStrength(name string) (float64, error) {
	v, ok := f.initial[name]
	if !ok {
		return 0, NewUnknownArgumentError(name)
	}
	return v, nil
}

// InitialStrengths returns a copy of the initial-strength mapping.
func (f *Framework) InitialStrengths() map[string]float64 {
	out := make(map[string]float64, len(f.initial))
	for name, v := range f.initial {
		out[name] = v
	}
	return out
}

// Attacks returns the live attack index. Mutate the framework through its
// own API, not through the returned handle; direct mutation bypasses the
// invariant checks and the cache invalidation.
func (f *Framework) Attacks() *RelationIndex {
	return f.attacks
}

// Supports returns the live support index, under the same contract as
// Attacks.
func (f *Framework) Supports() *RelationIndex {
	return f.supports
}

// AddArgument inserts name with the given initial strength. Adding a
// present argument is a no-op and keeps its existing strength.
func (f *Framework) AddArgument(name string, initialStrength float64) {
	if _, ok := f.arguments[name]; ok {
		return
	}
	f.arguments[name] = struct{}{}
	f.initial[name] = initialStrength
	f.dirty = true
}

// RemoveArgument deletes name from the framework along with every attack
// and support relation that references it. Removing an absent argument is
// a no-op.
//
// The cascade keeps invariant 1 intact without burdening callers with
// relation cleanup; a framework therefore never holds dangling relations.
func (f *Framework) RemoveArgument(name string) {
	if _, ok := f.arguments[name]; !ok {
		return
	}
	for _, patient := range f.attacks.Patients(name) {
		f.attacks.Remove(name, patient)
	}
	for _, agent := range f.attacks.Agents(name) {
		f.attacks.Remove(agent, name)
	}
	for _, patient := range f.supports.Patients(name) {
		f.supports.Remove(name, patient)
	}
	for _, agent := range f.supports.Agents(name) {
		f.supports.Remove(agent, name)
	}
	delete(f.arguments, name)
	delete(f.initial, name)
	f.dirty = true
}

// SetInitialStrength assigns a new initial strength to an existing
// argument. Fails with UNKNOWN_ARGUMENT if name is absent.
func (f *Framework) SetInitialStrength(name string, value float64) error {
	if _, ok := f.arguments[name]; !ok {
		return NewUnknownArgumentError(name)
	}
	f.initial[name] = value
	f.dirty = true
	return nil
}

// AddAttack inserts the attack (attacker, attacked). Fails with
// INVALID_RELATION_ENDPOINT if either name is not an argument and with
// CONFLICTING_RELATION if the pair already exists as a support.
func (f *Framework) AddAttack(attacker, attacked string) error {
	if err := f.checkEndpoints(Relation{Agent: attacker, Patient: attacked}); err != nil {
		return err
	}
	if f.supports.Contains(attacker, attacked) {
		return NewConflictingRelationError(attacker, attacked, "support")
	}
	f.attacks.Add(attacker, attacked)
	f.dirty = true
	return nil
}

// RemoveAttack deletes the attack (attacker, attacked). Removing an absent
// pair is a no-op but still invalidates the strength cache.
func (f *Framework) RemoveAttack(attacker, attacked string) {
	f.attacks.Remove(attacker, attacked)
	f.dirty = true
}

// AddSupport inserts the support (supporter, supported), symmetric to
// AddAttack with the conflict checked against the attack index.
func (f *Framework) AddSupport(supporter, supported string) error {
	if err := f.checkEndpoints(Relation{Agent: supporter, Patient: supported}); err != nil {
		return err
	}
	if f.attacks.Contains(supporter, supported) {
		return NewConflictingRelationError(supporter, supported, "attack")
	}
	f.supports.Add(supporter, supported)
	f.dirty = true
	return nil
}

// RemoveSupport deletes the support (supporter, supported). Removing an
// absent pair is a no-op but still invalidates the strength cache.
func (f *Framework) RemoveSupport(supporter, supported string) {
	f.supports.Remove(supporter, supported)
	f.dirty = true
}

// ContainsAttack reports whether (attacker, attacked) is an attack.
func (f *Framework) ContainsAttack(attacker, attacked string) bool {
	return f.attacks.Contains(attacker, attacked)
}

// ContainsSupport reports whether (supporter, supported) is a support.
func (f *Framework) ContainsSupport(supporter, supported string) bool {
	return f.supports.Contains(supporter, supported)
}

// AttackedBy returns the arguments attacked by attacker, sorted.
func (f *Framework) AttackedBy(attacker string) []string {
	return f.attacks.Patients(attacker)
}

// AttackersOf returns the arguments attacking attacked, sorted.
func (f *Framework) AttackersOf(attacked string) []string {
	return f.attacks.Agents(attacked)
}

// SupportedBy returns the arguments supported by supporter, sorted.
func (f *Framework) SupportedBy(supporter string) []string {
	return f.supports.Patients(supporter)
}

// SupportersOf returns the arguments supporting supported, sorted.
func (f *Framework) SupportersOf(supported string) []string {
	return f.supports.Agents(supported)
}

// Copy returns an independent framework with the same arguments, initial
// strengths and relations. The strength cache is not carried over; the
// copy recomputes on its first strength query.
func (f *Framework) Copy() *Framework {
	out := &Framework{
		arguments: make(map[string]struct{}, len(f.arguments)),
		initial:   make(map[string]float64, len(f.initial)),
		attacks:   f.attacks.Copy(),
		supports:  f.supports.Copy(),
		dirty:     true,
	}
	for name := range f.arguments {
		out.arguments[name] = struct{}{}
		out.initial[name] = f.initial[name]
	}
	return out
}

// Equal reports structural equality: same argument set, same initial
// strengths and identical attack and support relation sets. The strength
// cache does not participate.
func (f *Framework) Equal(other *Framework) bool {
	if len(f.arguments) != len(other.arguments) {
		return false
	}
	for name := range f.arguments {
		if _, ok := other.arguments[name]; !ok {
			return false
		}
		if f.initial[name] != other.initial[name] {
			return false
		}
	}
	return f.attacks.Equal(other.attacks) && f.supports.Equal(other.supports)
}

// Restrict returns a new framework containing exactly the named arguments
// (intersected with f's argument set), their initial strengths, and every
// attack/support relation with both endpoints retained. Pure projection;
// strengths are not re-aggregated.
func Restrict(f *Framework, names []string) *Framework {
	keep := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := f.arguments[name]; ok {
			keep[name] = struct{}{}
		}
	}

	out := &Framework{
		arguments: keep,
		initial:   make(map[string]float64, len(keep)),
		attacks:   NewRelationIndex(),
		supports:  NewRelationIndex(),
		dirty:     true,
	}
	for name := range keep {
		out.initial[name] = f.initial[name]
	}
	for _, pair := range f.attacks.Relations() {
		if _, ok := keep[pair.Agent]; !ok {
			continue
		}
		if _, ok := keep[pair.Patient]; !ok {
			continue
		}
		out.attacks.Add(pair.Agent, pair.Patient)
	}
	for _, pair := range f.supports.Relations() {
		if _, ok := keep[pair.Agent]; !ok {
			continue
		}
		if _, ok := keep[pair.Patient]; !ok {
			continue
		}
		out.supports.Add(pair.Agent, pair.Patient)
	}
	return out
}
