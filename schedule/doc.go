// Package schedule reserves each drone's committed route against a
// reservation.Tracker and a teg.Graph (spec §4.5, the sequential
// assembler), then renders the turn-by-turn movement transcript described
// in spec §4.6 and §6.
package schedule
