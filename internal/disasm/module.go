package disasm

import (
	"dvm/internal/bytecode"
)

// Module is one fully decoded compilation unit, ready to render as an
// address-wrapped module block.
type Module struct {
	address bytecode.AccountAddress
	name    string
	structs []*StructDef
}

// NewModule decodes every struct definition of a compiled module in table
// order. The first failing struct aborts the whole decode.
func NewModule(m *bytecode.Module, imports *Imports, generics Generics) (*Module, error) {
	name, err := m.SelfName()
	if err != nil {
		return nil, err
	}
	address, err := m.SelfAddress()
	if err != nil {
		return nil, err
	}

	structs := make([]*StructDef, 0, len(m.StructDefs))
	for i := range m.StructDefs {
		def, err := NewStructDef(&m.StructDefs[i], m, generics, imports)
		if err != nil {
			return nil, err
		}
		structs = append(structs, def)
	}

	return &Module{
		address: address,
		name:    name,
		structs: structs,
	}, nil
}

func (m *Module) encode(w *writer) {
	w.writeString("address ")
	w.writeString(m.address.String())
	w.writeString(" {")
	w.newline()
	w.indentPush()

	w.writeString("module ")
	w.writeString(m.name)
	w.writeString(" {")
	w.newline()
	w.indentPush()

	for i, def := range m.structs {
		if i > 0 {
			w.blankLine()
		}
		def.encode(w)
	}

	w.indentPop()
	w.writeByte('}')
	w.newline()
	w.indentPop()
	w.writeByte('}')
	w.newline()
}
