// Package bytecode defines the in-memory, table-indexed form of one
// compiled module (identifier/address pools, module and struct handles,
// struct definitions) and the msgpack container codec that serializes it.
//
// All cross-table references are 16-bit indexes; the accessor methods on
// Module bounds-check every lookup and return *IndexError on violation.
package bytecode
