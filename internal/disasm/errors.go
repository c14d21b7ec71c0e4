package disasm

// UnsupportedError reports a binary construct that the data model accepts
// but the textual grammar cannot express. The module render fails rather
// than approximating the construct in text.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return "disasm: unsupported construct: " + e.Construct
}
