// Package markov fits a finite-order Markov model to an event sequence and
// derives its entropy rate.
//
// The pipeline chains four steps over a shared state enumeration:
//
//  1. Order-m embedding of the sequence into composite states (statespace).
//  2. Transition counting and row normalization into a stochastic matrix.
//  3. Stationary-distribution estimation, either empirical (relative state
//     frequency) or eigen-based (unit eigenvector of the transposed
//     transition matrix).
//  4. Aggregation into the scalar rate H = -sum_i sum_j pi_i P_ij log2 P_ij.
//
// Numeric edge cases are absorbed into well-defined results rather than
// raised: never-visited source states keep all-zero probability rows, the
// 0*log2(0) term contributes exactly 0, and a spectrum without a unit
// eigenvalue yields a tagged Degenerate result carrying a zero vector. Only
// data-validation problems (unknown symbols, sequences too short to contain
// a transition) and ambiguous spectra surface as errors.
//
// Simulate performs the inverse operation: forward ancestral sampling of a
// sequence from a transition matrix, for cross-checking the estimators.
package markov
