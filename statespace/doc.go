// Package statespace defines the finite, ordered state space an event
// sequence draws its symbols from, and the order-m composite expansion used
// to embed higher-order Markov dependencies as a first-order chain.
//
// A Space fixes the enumeration order of its symbols. Every matrix and vector
// produced by the markov package is indexed by that order, so two pipelines
// built from the same Space (or the same expansion of it) are directly
// comparable index by index.
package statespace
