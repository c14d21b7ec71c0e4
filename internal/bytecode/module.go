package bytecode

// Table index types. All tables are indexed with 16-bit indexes, matching
// the serialized format.
type (
	IdentifierIndex    uint16
	AddressIndex       uint16
	ModuleHandleIndex  uint16
	StructHandleIndex  uint16
	TypeParameterIndex uint16
)

// ModuleHandle names a module by identifier-pool and address-pool indexes.
type ModuleHandle struct {
	Name    IdentifierIndex
	Address AddressIndex
}

// StructHandle records a struct's owning module, name and generic shape
// without its field layout.
type StructHandle struct {
	Module            ModuleHandleIndex
	Name              IdentifierIndex
	IsNominalResource bool
	TypeParameters    []Kind `msgpack:",omitempty"`
}

// FieldDef is one declared field: a name and its type signature.
type FieldDef struct {
	Name      IdentifierIndex
	Signature SignatureToken
}

// FieldInformation is the field layout of a struct definition: either
// native (no fields in the binary) or an ordered list of declared fields.
type FieldInformation struct {
	Native bool
	Fields []FieldDef `msgpack:",omitempty"`
}

// StructDef pairs a struct handle with its field layout.
type StructDef struct {
	StructHandle     StructHandleIndex
	FieldInformation FieldInformation
}

// Module is the in-memory form of one compiled code unit: deduplicated
// pools plus the handle and definition tables that reference them by index.
// It is an immutable view once constructed; nothing here is mutated during
// disassembly.
type Module struct {
	SelfModule    ModuleHandleIndex
	Identifiers   []string
	AddressPool   []AccountAddress
	ModuleHandles []ModuleHandle
	StructHandles []StructHandle
	StructDefs    []StructDef
}

// Identifier resolves an identifier-pool index, failing on out-of-range.
func (m *Module) Identifier(idx IdentifierIndex) (string, error) {
	if int(idx) >= len(m.Identifiers) {
		return "", &IndexError{Table: "identifiers", Index: int(idx), Size: len(m.Identifiers)}
	}
	return m.Identifiers[idx], nil
}

// Address resolves an address-pool index, failing on out-of-range.
func (m *Module) Address(idx AddressIndex) (AccountAddress, error) {
	if int(idx) >= len(m.AddressPool) {
		return AccountAddress{}, &IndexError{Table: "address pool", Index: int(idx), Size: len(m.AddressPool)}
	}
	return m.AddressPool[idx], nil
}

// Handle resolves a module-handle table index, failing on out-of-range.
func (m *Module) Handle(idx ModuleHandleIndex) (*ModuleHandle, error) {
	if int(idx) >= len(m.ModuleHandles) {
		return nil, &IndexError{Table: "module handles", Index: int(idx), Size: len(m.ModuleHandles)}
	}
	return &m.ModuleHandles[idx], nil
}

// Struct resolves a struct-handle table index, failing on out-of-range.
func (m *Module) Struct(idx StructHandleIndex) (*StructHandle, error) {
	if int(idx) >= len(m.StructHandles) {
		return nil, &IndexError{Table: "struct handles", Index: int(idx), Size: len(m.StructHandles)}
	}
	return &m.StructHandles[idx], nil
}

// SelfHandle returns the handle of the module itself.
func (m *Module) SelfHandle() (*ModuleHandle, error) {
	return m.Handle(m.SelfModule)
}

// SelfName returns the module's own name.
func (m *Module) SelfName() (string, error) {
	handle, err := m.SelfHandle()
	if err != nil {
		return "", err
	}
	return m.Identifier(handle.Name)
}

// SelfAddress returns the address the module is declared under.
func (m *Module) SelfAddress() (AccountAddress, error) {
	handle, err := m.SelfHandle()
	if err != nil {
		return AccountAddress{}, err
	}
	return m.Address(handle.Address)
}
