package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write marshals v as indented JSON and writes it to path, creating or
// truncating the file. The encoding uses a four-space indent and a
// trailing newline; map keys come out in sorted order, so repeated
// writes of the same value produce byte-identical files.
//
// Errors:
//   - ErrEncode – v contains something JSON cannot carry (NaN, Inf, ...).
//   - filesystem errors from os.WriteFile, wrapped.
func Write(path string, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("jsonio: write %s: %w", path, err)
	}
	return nil
}

// Read decodes the JSON file at path into the value pointed to by
// into, which must be a non-nil pointer.
//
// Errors:
//   - filesystem errors from os.ReadFile, wrapped (errors.Is with
//     os.ErrNotExist keeps working).
//   - ErrDecode – the file is not valid JSON for the target value.
func Read(path string, into interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jsonio: read %s: %w", path, err)
	}
	if err := json.Unmarshal(buf, into); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
