// Package geo holds the static geographic reference data used to sequence
// courier routes: the seven national regions with their member cities, anchor
// coordinates and route priorities, and the transition table of bridge cities
// between region pairs.
//
// The tables are loaded once into an immutable Registry at process start and
// are never mutated afterwards. City matching is case-insensitive and folds
// Turkish diacritics, so "istanbul", "İSTANBUL" and "İstanbul" all resolve to
// the same canonical city.
package geo
