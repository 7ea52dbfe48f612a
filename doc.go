// Package randbase provides random bit generation behind one small
// contract.
//
// The bitgen package defines the Generator interface: four draw operations
// over one shared stream cursor. The algorithm packages underneath it
// (jsf, sfc, pcg, mtwister, xoshiro) implement that contract for fast
// statistical generators, seeded through the seeds package. The rng
// package implements it for a Fortuna-based secure generator fed with OS
// entropy and scheduler jitter.
//
// Consumers should accept a bitgen.Generator and never depend on which
// algorithm is behind it.
package randbase
