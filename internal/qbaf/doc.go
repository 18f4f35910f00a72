// Package qbaf implements Quantitative Bipolar Argumentation Frameworks.
//
// A framework is a set of named arguments related by directed attack and
// support edges, with an initial strength assigned to every argument. From
// the initial strengths a final strength is derived for each argument:
//
//	final(a) = initial(a) - sum(final(x) for attackers x of a)
//	                      + sum(final(y) for supporters y of a)
//
// Final strengths are only defined when the combined attack/support graph
// is acyclic. Cyclic frameworks are rejected, never approximated.
//
// On top of strength propagation the package answers a comparative
// question: given two frameworks that disagree on the relative strength
// ordering of two focal arguments, which minimal sets of arguments explain
// the disagreement? See IsSSIExplanation, IsCSIExplanation and the
// MinimalSSIExplanations/MinimalCSIExplanations searches.
//
// DETERMINISM:
//
// Every traversal in this package iterates arguments and relations in
// sorted name order. Two runs over the same framework produce identical
// strength maps, identical explanation orderings and identical error
// messages. There is no randomness and no map-order dependence.
//
// CONCURRENCY:
//
// A Framework is mutable shared state with an internal strength cache.
// Concurrent read-only queries are safe once strengths are computed;
// concurrent mutation requires external synchronization. The package
// itself takes no locks.
package qbaf
