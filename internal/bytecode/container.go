package bytecode

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the container format changes
const containerSchemaVersion uint16 = 1

// FileExt is the file extension used for serialized module containers.
const FileExt = ".dvmod"

// container is the on-disk envelope around a module.
type container struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Module *Module
}

// Encode serializes a module into the container format.
func Encode(m *Module) ([]byte, error) {
	if m == nil {
		return nil, errors.New("bytecode: nil module")
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(&container{Schema: containerSchemaVersion, Module: m}); err != nil {
		return nil, fmt.Errorf("bytecode: encode container: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes a container produced by Encode, rejecting unknown
// schema versions.
func Decode(data []byte) (*Module, error) {
	var c container
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("bytecode: decode container: %w", err)
	}
	if c.Schema != containerSchemaVersion {
		return nil, fmt.Errorf("bytecode: unsupported container schema %d (want %d)", c.Schema, containerSchemaVersion)
	}
	if c.Module == nil {
		return nil, errors.New("bytecode: container has no module")
	}
	return c.Module, nil
}
