package bytecode

import (
	"fmt"

	"fortio.org/safecast"
)

// Builder helpers for constructing modules programmatically (packers and
// tests). Pools are deduplicated; handle and definition tables are not.

// AddIdentifier interns a name into the identifier pool and returns its index.
func (m *Module) AddIdentifier(name string) (IdentifierIndex, error) {
	for i, id := range m.Identifiers {
		if id == name {
			return IdentifierIndex(i), nil
		}
	}
	idx, err := safecast.Conv[uint16](len(m.Identifiers))
	if err != nil {
		return 0, fmt.Errorf("bytecode: identifier pool overflow: %w", err)
	}
	m.Identifiers = append(m.Identifiers, name)
	return IdentifierIndex(idx), nil
}

// AddAddress interns an address into the address pool and returns its index.
func (m *Module) AddAddress(addr AccountAddress) (AddressIndex, error) {
	for i, a := range m.AddressPool {
		if a == addr {
			return AddressIndex(i), nil
		}
	}
	idx, err := safecast.Conv[uint16](len(m.AddressPool))
	if err != nil {
		return 0, fmt.Errorf("bytecode: address pool overflow: %w", err)
	}
	m.AddressPool = append(m.AddressPool, addr)
	return AddressIndex(idx), nil
}

// AddHandle appends a module handle and returns its index.
func (m *Module) AddHandle(h ModuleHandle) (ModuleHandleIndex, error) {
	idx, err := safecast.Conv[uint16](len(m.ModuleHandles))
	if err != nil {
		return 0, fmt.Errorf("bytecode: module-handle table overflow: %w", err)
	}
	m.ModuleHandles = append(m.ModuleHandles, h)
	return ModuleHandleIndex(idx), nil
}

// AddStruct appends a struct handle and returns its index.
func (m *Module) AddStruct(h StructHandle) (StructHandleIndex, error) {
	idx, err := safecast.Conv[uint16](len(m.StructHandles))
	if err != nil {
		return 0, fmt.Errorf("bytecode: struct-handle table overflow: %w", err)
	}
	m.StructHandles = append(m.StructHandles, h)
	return StructHandleIndex(idx), nil
}

// AddStructDef appends a struct definition.
func (m *Module) AddStructDef(def StructDef) {
	m.StructDefs = append(m.StructDefs, def)
}
