package jsonio

import "errors"

var (
	// ErrEncode indicates the value cannot be represented as JSON,
	// for example a NaN or Inf float, a channel, or a cyclic value.
	ErrEncode = errors.New("jsonio: value cannot be encoded as JSON")

	// ErrDecode indicates the file contents are not valid JSON for
	// the target value.
	ErrDecode = errors.New("jsonio: invalid JSON")
)
