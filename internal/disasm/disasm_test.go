package disasm

import (
	"errors"
	"testing"

	"dvm/internal/bytecode"
)

// newTestModule builds a module named name declared at an address whose
// last byte is addr, with no structs yet.
func newTestModule(t *testing.T, addr byte, name string) *bytecode.Module {
	t.Helper()
	m := &bytecode.Module{}
	var address bytecode.AccountAddress
	address[bytecode.AddressLength-1] = addr

	nameIdx, err := m.AddIdentifier(name)
	if err != nil {
		t.Fatalf("AddIdentifier: %v", err)
	}
	addrIdx, err := m.AddAddress(address)
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	selfIdx, err := m.AddHandle(bytecode.ModuleHandle{Name: nameIdx, Address: addrIdx})
	if err != nil {
		t.Fatalf("AddHandle: %v", err)
	}
	m.SelfModule = selfIdx
	return m
}

// addStruct registers a struct in the module's own handle table and appends
// its definition, returning the handle index.
func addStruct(t *testing.T, m *bytecode.Module, name string, resource bool, params []bytecode.Kind, info bytecode.FieldInformation) bytecode.StructHandleIndex {
	t.Helper()
	nameIdx, err := m.AddIdentifier(name)
	if err != nil {
		t.Fatalf("AddIdentifier: %v", err)
	}
	handleIdx, err := m.AddStruct(bytecode.StructHandle{
		Module:            m.SelfModule,
		Name:              nameIdx,
		IsNominalResource: resource,
		TypeParameters:    params,
	})
	if err != nil {
		t.Fatalf("AddStruct: %v", err)
	}
	m.AddStructDef(bytecode.StructDef{StructHandle: handleIdx, FieldInformation: info})
	return handleIdx
}

func mustIdent(t *testing.T, m *bytecode.Module, name string) bytecode.IdentifierIndex {
	t.Helper()
	idx, err := m.AddIdentifier(name)
	if err != nil {
		t.Fatalf("AddIdentifier: %v", err)
	}
	return idx
}

func TestTextSimpleResourceStruct(t *testing.T) {
	m := newTestModule(t, 1, "Coin")
	addStruct(t, m, "Coin", true, nil, bytecode.FieldInformation{
		Fields: []bytecode.FieldDef{
			{Name: mustIdent(t, m, "value"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenU64}},
		},
	})

	got, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	want := "address 0x00000000000000000000000000000001 {\n" +
		"    module Coin {\n" +
		"        resource struct Coin {\n" +
		"            value: u64\n" +
		"        }\n" +
		"    }\n" +
		"}\n"
	if got != want {
		t.Fatalf("Text mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTextBlankLineBetweenStructs(t *testing.T) {
	m := newTestModule(t, 2, "Pair")
	addStruct(t, m, "One", false, nil, bytecode.FieldInformation{
		Fields: []bytecode.FieldDef{
			{Name: mustIdent(t, m, "a"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenBool}},
		},
	})
	addStruct(t, m, "Two", false, nil, bytecode.FieldInformation{Native: true})

	got, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	want := "address 0x00000000000000000000000000000002 {\n" +
		"    module Pair {\n" +
		"        struct One {\n" +
		"            a: bool\n" +
		"        }\n" +
		"\n" +
		"        native struct Two;\n" +
		"    }\n" +
		"}\n"
	if got != want {
		t.Fatalf("Text mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTextDeterministic(t *testing.T) {
	m := newTestModule(t, 3, "Store")
	addStruct(t, m, "Box", false, []bytecode.Kind{bytecode.KindAll}, bytecode.FieldInformation{
		Fields: []bytecode.FieldDef{
			{Name: mustIdent(t, m, "inner"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenTypeParameter, TypeParam: 0}},
		},
	})

	first, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("first Text failed: %v", err)
	}
	second, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("second Text failed: %v", err)
	}
	if first != second {
		t.Fatalf("non-deterministic output:\nfirst  %q\nsecond %q", first, second)
	}
}

func TestTextImportQualifiedTypes(t *testing.T) {
	m := newTestModule(t, 4, "Holder")

	var addrA, addrB bytecode.AccountAddress
	addrA[bytecode.AddressLength-1] = 0xa
	addrB[bytecode.AddressLength-1] = 0xb
	fooIdx := mustIdent(t, m, "Foo")
	xIdx := mustIdent(t, m, "X")
	aIdx, err := m.AddAddress(addrA)
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	bIdx, err := m.AddAddress(addrB)
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	hA, err := m.AddHandle(bytecode.ModuleHandle{Name: fooIdx, Address: aIdx})
	if err != nil {
		t.Fatalf("AddHandle: %v", err)
	}
	hB, err := m.AddHandle(bytecode.ModuleHandle{Name: fooIdx, Address: bIdx})
	if err != nil {
		t.Fatalf("AddHandle: %v", err)
	}
	extA, err := m.AddStruct(bytecode.StructHandle{Module: hA, Name: xIdx})
	if err != nil {
		t.Fatalf("AddStruct: %v", err)
	}
	extB, err := m.AddStruct(bytecode.StructHandle{Module: hB, Name: xIdx})
	if err != nil {
		t.Fatalf("AddStruct: %v", err)
	}

	addStruct(t, m, "Holder", false, nil, bytecode.FieldInformation{
		Fields: []bytecode.FieldDef{
			{Name: mustIdent(t, m, "first"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenStruct, Struct: extA}},
			{Name: mustIdent(t, m, "second"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenStruct, Struct: extB}},
		},
	})

	got, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	want := "address 0x00000000000000000000000000000004 {\n" +
		"    module Holder {\n" +
		"        struct Holder {\n" +
		"            first: Foo::X,\n" +
		"            second: Foo1::X\n" +
		"        }\n" +
		"    }\n" +
		"}\n"
	if got != want {
		t.Fatalf("Text mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTextFailsClosed(t *testing.T) {
	m := newTestModule(t, 5, "Broken")
	addStruct(t, m, "Fine", false, nil, bytecode.FieldInformation{Native: true})
	// Второй struct ссылается на несуществующий handle
	m.AddStructDef(bytecode.StructDef{StructHandle: 99})

	got, err := Text(m, Options{})
	if err == nil {
		t.Fatal("expected an error for the out-of-range struct handle")
	}
	var idxErr *bytecode.IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("expected IndexError, got %T: %v", err, err)
	}
	if got != "" {
		t.Fatalf("partial output leaked: %q", got)
	}
}

func TestTextNilModule(t *testing.T) {
	if _, err := Text(nil, Options{}); err == nil {
		t.Fatal("expected an error for nil module")
	}
}

func TestDisasmContainerRoundTrip(t *testing.T) {
	m := newTestModule(t, 6, "Wallet")
	addStruct(t, m, "Wallet", true, nil, bytecode.FieldInformation{
		Fields: []bytecode.FieldDef{
			{Name: mustIdent(t, m, "balance"), Signature: bytecode.SignatureToken{Tag: bytecode.TokenU128}},
		},
	})

	want, err := Text(m, Options{})
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	data, err := bytecode.Encode(m)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Disasm(data, Options{})
	if err != nil {
		t.Fatalf("Disasm failed: %v", err)
	}
	if got != want {
		t.Fatalf("Disasm mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTextCustomIndentWidth(t *testing.T) {
	m := newTestModule(t, 7, "Tiny")
	addStruct(t, m, "Unit", false, nil, bytecode.FieldInformation{})

	got, err := Text(m, Options{IndentWidth: 2})
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	want := "address 0x00000000000000000000000000000007 {\n" +
		"  module Tiny {\n" +
		"    struct Unit {\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
	if got != want {
		t.Fatalf("Text mismatch:\nwant %q\ngot  %q", want, got)
	}
}
