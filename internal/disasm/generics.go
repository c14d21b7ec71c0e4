package disasm

import (
	"fmt"
	"math/rand"
	"strconv"

	"dvm/internal/bytecode"
)

// Candidate prefixes for generic display names, tried in order.
var genericPrefixes = [22]string{
	"T", "G", "V", "A", "B", "C", "D", "F", "H", "J", "K", "L", "M", "N", "P", "Q", "R", "S", "W",
	"X", "Y", "Z",
}

// Generics picks one display-name prefix per module for its generic type
// parameters: the first candidate that is not a real identifier anywhere in
// the module. The same prefix is shared by every struct in the module;
// parameter references are always scoped to one struct's own list, so
// index-local names never clash.
type Generics struct {
	prefix string
}

// NewGenerics scans the identifier pool and fixes the module's prefix.
//
// If every candidate is taken by a real identifier, the prefix falls back
// to a generated name with a random 16-bit tail. The fallback is not
// guaranteed collision-free, only negligibly unlikely to collide, and it
// makes the output non-deterministic for such modules.
func NewGenerics(m *bytecode.Module) Generics {
	used := make(map[string]struct{}, len(m.Identifiers))
	for _, id := range m.Identifiers {
		used[id] = struct{}{}
	}
	for _, prefix := range genericPrefixes {
		if _, taken := used[prefix]; !taken {
			return Generics{prefix: prefix}
		}
	}
	return Generics{prefix: fmt.Sprintf("G%d", rand.Intn(1<<16))}
}

// Param creates the display form of one declared type parameter.
func (g Generics) Param(index int, kind bytecode.Kind) Generic {
	return Generic{prefix: g.prefix, index: index, kind: kind}
}

// Generic is one type parameter of a specific struct, ready to render.
type Generic struct {
	prefix string
	index  int
	kind   bytecode.Kind
}

// Name returns the display name used at reference sites: the bare prefix
// for parameter 0, prefix_i for parameter i>0.
func (g Generic) Name() string {
	if g.index == 0 {
		return g.prefix
	}
	return g.prefix + "_" + strconv.Itoa(g.index)
}

// encode writes the declaration form, including the kind constraint.
// Reference sites use Name directly; the constraint belongs only to the
// declaration list.
func (g Generic) encode(w *writer) {
	w.writeString(g.Name())
	switch g.kind {
	case bytecode.KindResource:
		w.writeString(": resource")
	case bytecode.KindCopyable:
		w.writeString(": copyable")
	}
}
