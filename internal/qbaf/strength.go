package qbaf

// dfs coloring states for cycle detection.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

// IsAcyclic reports whether the combined attack/support graph (edges
// directed agent to patient) contains no directed cycle. Self-loops count
// as cycles. Every argument is visited, including arguments disconnected
// from the rest of the graph.
//
// The traversal is an iterative three-state depth-first search; a
// back-edge to an in-progress node signals a cycle. Stack usage is
// bounded independently of graph depth.
func (f *Framework) IsAcyclic() bool {
	state := make(map[string]visitState, len(f.arguments))

	// frame tracks a node plus how many of its successors have been
	// expanded, so the explicit stack mirrors the recursive traversal.
	type frame struct {
		name string
		next int
	}

	for _, root := range f.Arguments() {
		if state[root] != unvisited {
			continue
		}
		stack := []frame{{name: root}}
		state[root] = inProgress
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			successors := f.successors(top.name)
			if top.next >= len(successors) {
				state[top.name] = done
				stack = stack[:len(stack)-1]
				continue
			}
			child := successors[top.next]
			top.next++
			switch state[child] {
			case inProgress:
				return false
			case unvisited:
				state[child] = inProgress
				stack = append(stack, frame{name: child})
			}
		}
	}
	return true
}

// successors returns the attack and support patients of name, sorted and
// deduplicated across the two indices.
func (f *Framework) successors(name string) []string {
	att := f.attacks.Patients(name)
	sup := f.supports.Patients(name)
	if len(sup) == 0 {
		return att
	}
	if len(att) == 0 {
		return sup
	}
	merged := make(map[string]struct{}, len(att)+len(sup))
	for _, p := range att {
		merged[p] = struct{}{}
	}
	for _, p := range sup {
		merged[p] = struct{}{}
	}
	return sortedNames(merged)
}

// FinalStrengths returns the final strength of every argument as a copy
// of the cached mapping, recomputing the whole mapping first if the
// framework was mutated since the last computation.
//
// Fails with CYCLIC_GRAPH_UNSUPPORTED on a cyclic framework; no partial
// results are produced or cached in that case.
func (f *Framework) FinalStrengths() (map[string]float64, error) {
	if err := f.refreshStrengths(); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(f.final))
	for name, v := range f.final {
		out[name] = v
	}
	return out, nil
}

// FinalStrength returns the final strength of a single argument, under
// the same caching contract as FinalStrengths. Fails with
// UNKNOWN_ARGUMENT if name is not part of the framework.
func (f *Framework) FinalStrength(name string) (float64, error) {
	if _, ok := f.arguments[name]; !ok {
		return 0, NewUnknownArgumentError(name)
	}
	if err := f.refreshStrengths(); err != nil {
		return 0, err
	}
	return f.final[name], nil
}

// refreshStrengths recomputes the cached final strengths if stale.
func (f *Framework) refreshStrengths() error {
	if !f.dirty {
		return nil
	}
	final, err := f.computeFinalStrengths()
	if err != nil {
		return err
	}
	f.final = final
	f.dirty = false
	return nil
}

// computeFinalStrengths evaluates
//
//	final(a) = initial(a) - sum(final(attackers(a))) + sum(final(supporters(a)))
//
// over a topological order of the combined graph, so every attacker and
// supporter is resolved before the arguments it influences. The order is
// built with Kahn's algorithm seeded and expanded in sorted name order,
// which keeps summation order stable across runs.
func (f *Framework) computeFinalStrengths() (map[string]float64, error) {
	if !f.IsAcyclic() {
		return nil, NewCyclicGraphError()
	}

	indegree := make(map[string]int, len(f.arguments))
	for name := range f.arguments {
		indegree[name] = len(f.attacks.Agents(name)) + len(f.supports.Agents(name))
	}

	queue := make([]string, 0, len(f.arguments))
	for _, name := range f.Arguments() {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	final := make(map[string]float64, len(f.arguments))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		strength := f.initial[name]
		for _, attacker := range f.attacks.Agents(name) {
			strength -= final[attacker]
		}
		for _, supporter := range f.supports.Agents(name) {
			strength += final[supporter]
		}
		final[name] = strength

		for _, patient := range f.successors(name) {
			indegree[patient]--
			if indegree[patient] == 0 {
				queue = append(queue, patient)
			}
		}
	}
	return final, nil
}

// TopologicalOrder returns the argument names in an evaluation order of
// the combined attack/support graph: every agent precedes all of its
// patients, ties broken by name. Fails with CYCLIC_GRAPH_UNSUPPORTED on a
// cyclic framework.
func (f *Framework) TopologicalOrder() ([]string, error) {
	if !f.IsAcyclic() {
		return nil, NewCyclicGraphError()
	}
	indegree := make(map[string]int, len(f.arguments))
	for name := range f.arguments {
		indegree[name] = len(f.attacks.Agents(name)) + len(f.supports.Agents(name))
	}
	queue := make([]string, 0, len(f.arguments))
	for _, name := range f.Arguments() {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	order := make([]string, 0, len(f.arguments))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)
		for _, patient := range f.successors(name) {
			indegree[patient]--
			if indegree[patient] == 0 {
				queue = append(queue, patient)
			}
		}
	}
	return order, nil
}
