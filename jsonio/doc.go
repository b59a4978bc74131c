// Package jsonio reads and writes the small JSON artifacts research
// runs leave behind: fitted parameters, run settings, region bounds.
//
// What:
//
//   - Write marshals any encodable value as pretty JSON, four-space
//     indent, and map keys in sorted order, so artifacts diff cleanly
//     between runs.
//   - Read is the inverse, decoding a file into the caller's value.
//
// Filesystem errors pass through wrapped, so errors.Is against the os
// sentinels keeps working. Values JSON cannot carry (NaN, Inf,
// channels) surface as ErrEncode.
//
// Errors (sentinel):
//
//   - ErrEncode – the value cannot be represented as JSON.
//   - ErrDecode – the file is not valid JSON for the target value.
package jsonio
