package disasm

import (
	"strconv"

	"dvm/internal/bytecode"
)

// Import is the display token for one referenced module: either its bare
// name or a numbered alias when another address already claimed the name.
type Import struct {
	Name  string
	Alias int // 0 means the bare name
}

// Token returns the identifier used to qualify types from this module.
func (i Import) Token() string {
	if i.Alias == 0 {
		return i.Name
	}
	return i.Name + strconv.Itoa(i.Alias)
}

// Imports maps (address, module name) pairs to import tokens for one
// module. The self handle never receives an entry, so types of the module
// itself render unqualified.
type Imports struct {
	byName map[string]map[bytecode.AccountAddress]Import
}

// NewImports walks the module-handle table in order and assigns tokens.
// Within one module name, the first distinct address keeps the bare name
// and each later distinct address gets a numbered alias starting at 1.
func NewImports(m *bytecode.Module) (*Imports, error) {
	imports := &Imports{
		byName: make(map[string]map[bytecode.AccountAddress]Import),
	}
	for index, handle := range m.ModuleHandles {
		if index == int(m.SelfModule) {
			continue
		}
		name, err := m.Identifier(handle.Name)
		if err != nil {
			return nil, err
		}
		address, err := m.Address(handle.Address)
		if err != nil {
			return nil, err
		}
		group := imports.byName[name]
		if group == nil {
			group = make(map[bytecode.AccountAddress]Import)
			imports.byName[name] = group
		}
		if _, seen := group[address]; !seen {
			group[address] = Import{Name: name, Alias: len(group)}
		}
	}
	return imports, nil
}

// Get looks up the token for a referenced module. The second result is
// false when the pair was never registered, i.e. the module itself.
func (i *Imports) Get(address bytecode.AccountAddress, name string) (Import, bool) {
	group, ok := i.byName[name]
	if !ok {
		return Import{}, false
	}
	imp, ok := group[address]
	return imp, ok
}
