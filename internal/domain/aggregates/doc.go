// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts here are free of persistence details and mark the write
// boundaries whose invariants must hold atomically: the favorites
// membership/counter pair and the article lifecycle.
package aggregates
