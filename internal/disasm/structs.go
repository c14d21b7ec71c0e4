package disasm

import (
	"errors"
	"fmt"

	"dvm/internal/bytecode"
)

// StructDef is one fully decoded struct declaration: classification, name,
// generic-parameter list and field list, ready to render.
type StructDef struct {
	isNominalResource bool
	isNative          bool
	name              string
	typeParams        []Generic
	fields            []field
}

type field struct {
	name string
	typ  fieldType
}

// fieldType is one node of a rendered type expression.
type fieldType interface {
	encode(w *writer)
}

type primitiveType string

func (t primitiveType) encode(w *writer) {
	w.writeString(string(t))
}

type vectorType struct {
	inner fieldType
}

func (t vectorType) encode(w *writer) {
	w.writeString("vector<")
	t.inner.encode(w)
	w.writeByte('>')
}

type refType struct {
	inner   fieldType
	mutable bool
}

func (t refType) encode(w *writer) {
	if t.mutable {
		w.writeString("&mut ")
	} else {
		w.writeByte('&')
	}
	t.inner.encode(w)
}

type genericType struct {
	param Generic
}

func (t genericType) encode(w *writer) {
	w.writeString(t.param.Name())
}

type structType struct {
	name      string
	imp       Import
	hasImport bool
	typeArgs  []fieldType
}

func (t structType) encode(w *writer) {
	if t.hasImport {
		w.writeString(t.imp.Token())
		w.writeString("::")
	}
	w.writeString(t.name)
	if len(t.typeArgs) > 0 {
		w.writeByte('<')
		for i, arg := range t.typeArgs {
			if i > 0 {
				w.writeString(", ")
			}
			arg.encode(w)
		}
		w.writeByte('>')
	}
}

// NewStructDef decodes one struct definition against its module's tables.
// Any index that fails to resolve aborts the decode; no partial struct is
// ever produced.
func NewStructDef(def *bytecode.StructDef, m *bytecode.Module, generics Generics, imports *Imports) (*StructDef, error) {
	handle, err := m.Struct(def.StructHandle)
	if err != nil {
		return nil, err
	}
	name, err := m.Identifier(handle.Name)
	if err != nil {
		return nil, err
	}

	typeParams := make([]Generic, len(handle.TypeParameters))
	for i, kind := range handle.TypeParameters {
		typeParams[i] = generics.Param(i, kind)
	}

	fields, err := extractFields(m, &def.FieldInformation, imports, typeParams)
	if err != nil {
		return nil, fmt.Errorf("struct %s: %w", name, err)
	}

	return &StructDef{
		isNominalResource: handle.IsNominalResource,
		isNative:          def.FieldInformation.Native,
		name:              name,
		typeParams:        typeParams,
		fields:            fields,
	}, nil
}

func extractFields(m *bytecode.Module, info *bytecode.FieldInformation, imports *Imports, typeParams []Generic) ([]field, error) {
	if info.Native {
		return nil, nil
	}
	fields := make([]field, 0, len(info.Fields))
	for i := range info.Fields {
		def := &info.Fields[i]
		name, err := m.Identifier(def.Name)
		if err != nil {
			return nil, err
		}
		typ, err := extractTypeSignature(m, &def.Signature, imports, typeParams)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		fields = append(fields, field{name: name, typ: typ})
	}
	return fields, nil
}

func extractTypeSignature(m *bytecode.Module, sig *bytecode.SignatureToken, imports *Imports, typeParams []Generic) (fieldType, error) {
	switch sig.Tag {
	case bytecode.TokenBool:
		return primitiveType("bool"), nil
	case bytecode.TokenU8:
		return primitiveType("u8"), nil
	case bytecode.TokenU64:
		return primitiveType("u64"), nil
	case bytecode.TokenU128:
		return primitiveType("u128"), nil
	case bytecode.TokenAddress:
		return primitiveType("address"), nil
	case bytecode.TokenSigner:
		return primitiveType("signer"), nil
	case bytecode.TokenVector:
		if sig.Inner == nil {
			return nil, errors.New("vector signature missing element type")
		}
		inner, err := extractTypeSignature(m, sig.Inner, imports, typeParams)
		if err != nil {
			return nil, err
		}
		return vectorType{inner: inner}, nil
	case bytecode.TokenStruct:
		st, err := extractStructName(m, sig.Struct, imports)
		if err != nil {
			return nil, err
		}
		return st, nil
	case bytecode.TokenStructInstantiation:
		st, err := extractStructName(m, sig.Struct, imports)
		if err != nil {
			return nil, err
		}
		st.typeArgs = make([]fieldType, len(sig.TypeArgs))
		for i := range sig.TypeArgs {
			arg, err := extractTypeSignature(m, &sig.TypeArgs[i], imports, typeParams)
			if err != nil {
				return nil, err
			}
			st.typeArgs[i] = arg
		}
		return st, nil
	case bytecode.TokenReference, bytecode.TokenMutableReference:
		if sig.Inner == nil {
			return nil, errors.New("reference signature missing referent type")
		}
		inner, err := extractTypeSignature(m, sig.Inner, imports, typeParams)
		if err != nil {
			return nil, err
		}
		return refType{inner: inner, mutable: sig.Tag == bytecode.TokenMutableReference}, nil
	case bytecode.TokenTypeParameter:
		index := int(sig.TypeParam)
		if index >= len(typeParams) {
			return nil, &bytecode.IndexError{Table: "type parameters", Index: index, Size: len(typeParams)}
		}
		return genericType{param: typeParams[index]}, nil
	default:
		return nil, &UnsupportedError{Construct: fmt.Sprintf("signature token tag %d", sig.Tag)}
	}
}

// extractStructName resolves a struct handle to its display form: the type
// name, qualified with an import token unless the owning module is the one
// being disassembled.
func extractStructName(m *bytecode.Module, index bytecode.StructHandleIndex, imports *Imports) (structType, error) {
	handle, err := m.Struct(index)
	if err != nil {
		return structType{}, err
	}
	moduleHandle, err := m.Handle(handle.Module)
	if err != nil {
		return structType{}, err
	}
	moduleName, err := m.Identifier(moduleHandle.Name)
	if err != nil {
		return structType{}, err
	}
	address, err := m.Address(moduleHandle.Address)
	if err != nil {
		return structType{}, err
	}
	typeName, err := m.Identifier(handle.Name)
	if err != nil {
		return structType{}, err
	}
	imp, ok := imports.Get(address, moduleName)
	return structType{name: typeName, imp: imp, hasImport: ok}, nil
}

func (s *StructDef) encode(w *writer) {
	// Native layout wins over the resource flag: the grammar has no
	// native+resource form, and a native body cannot be spelled as fields.
	switch {
	case s.isNative:
		w.writeString("native struct")
	case s.isNominalResource:
		w.writeString("resource struct")
	default:
		w.writeString("struct")
	}
	w.writeByte(' ')
	w.writeString(s.name)

	if len(s.typeParams) > 0 {
		w.writeByte('<')
		for i, param := range s.typeParams {
			if i > 0 {
				w.writeString(", ")
			}
			param.encode(w)
		}
		w.writeByte('>')
	}

	if s.isNative {
		w.writeByte(';')
		w.newline()
		return
	}

	w.writeString(" {")
	w.newline()
	w.indentPush()
	for i, f := range s.fields {
		w.writeString(f.name)
		w.writeString(": ")
		f.typ.encode(w)
		if i < len(s.fields)-1 {
			w.writeByte(',')
		}
		w.newline()
	}
	w.indentPop()
	w.writeByte('}')
	w.newline()
}
