package disasm

import (
	"errors"

	"dvm/internal/bytecode"
)

const defaultIndent = 4

// Options control output formatting.
type Options struct {
	// IndentWidth is the number of spaces per nesting level; 0 means the
	// default of 4.
	IndentWidth int
}

// Text renders an in-memory module into source text. The result is either
// the complete text or a single error; the two are never mixed.
func Text(m *bytecode.Module, opt Options) (string, error) {
	if m == nil {
		return "", errors.New("disasm: nil module")
	}
	imports, err := NewImports(m)
	if err != nil {
		return "", err
	}
	generics := NewGenerics(m)
	unit, err := NewModule(m, imports, generics)
	if err != nil {
		return "", err
	}
	w := newWriter(opt.IndentWidth)
	unit.encode(w)
	return string(w.bytes()), nil
}

// Disasm decodes a serialized module container and renders it.
func Disasm(data []byte, opt Options) (string, error) {
	m, err := bytecode.Decode(data)
	if err != nil {
		return "", err
	}
	return Text(m, opt)
}
