package bytecode

import "fmt"

// IndexError reports a table reference that does not resolve within the
// module's own tables. It is always fatal for the module being decoded.
type IndexError struct {
	Table string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bytecode: %s index %d out of range (table size %d)", e.Table, e.Index, e.Size)
}
