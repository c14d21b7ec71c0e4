// Package disasm restores recompilable source text from a compiled module.
//
// Decoding is a pure, synchronous transformation: a fresh import resolver
// and generic namer are built per call, every struct definition is decoded
// in table order, and the caller observes either the complete rendered text
// or a single error. No partial output is ever returned.
package disasm
