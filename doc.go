// Package r1cs is a library for constructing rank-1 constraint system
// gadgets over prime fields.
//
// A gadget pairs a list of R1CS constraints with deterministic witness
// generators: given bindings for its input wires, the generators extend
// the witness to a full assignment and the executor checks that every
// constraint holds. See the gadget package for the builder and execution
// engine, field for the prime field arithmetic, and std for gadget
// families built on top (hash constructions and Merkle trees).
package r1cs
