package bytecode

// Kind constrains which concrete types may instantiate a generic slot of a
// struct handle.
type Kind uint8

const (
	// KindAll places no constraint on the slot.
	KindAll Kind = iota
	// KindResource requires a nominal resource type.
	KindResource
	// KindCopyable requires a copyable (non-resource) type.
	KindCopyable
)

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindResource:
		return "resource"
	case KindCopyable:
		return "copyable"
	default:
		return "unknown"
	}
}
