package bytecode

// TokenTag discriminates the variants of SignatureToken.
type TokenTag uint8

const (
	TokenBool TokenTag = iota
	TokenU8
	TokenU64
	TokenU128
	TokenAddress
	TokenSigner
	TokenVector
	TokenStruct
	TokenStructInstantiation
	TokenReference
	TokenMutableReference
	TokenTypeParameter
)

// SignatureToken is one node of a recursive type signature. Payload fields
// are meaningful only for the tags that use them.
type SignatureToken struct {
	Tag TokenTag
	// Inner is the element or referent type for TokenVector, TokenReference
	// and TokenMutableReference.
	Inner *SignatureToken `msgpack:",omitempty"`
	// Struct indexes the struct-handle table for TokenStruct and
	// TokenStructInstantiation.
	Struct StructHandleIndex
	// TypeArgs are the instantiation arguments for TokenStructInstantiation.
	TypeArgs []SignatureToken `msgpack:",omitempty"`
	// TypeParam indexes the enclosing struct's own type-parameter list for
	// TokenTypeParameter.
	TypeParam TypeParameterIndex
}
