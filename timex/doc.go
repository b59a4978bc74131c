// Package timex carries the time conveniences research scripts lean
// on: a filename-safe timestamp, human-readable durations, a defer
// based operation timer, and a bounded-execution wrapper.
//
// What:
//
//   - Stamp, Format and Parse convert between time.Time and the shared
//     "2006-01-02 15:04:05" representation at second precision.
//   - HumanDuration renders elapsed time the way a log line should
//     read: "0.51200 s", "02 min 05 s", "01 hr 01 min 05 s".
//   - Timeit times an operation and logs it on the way out:
//     defer timex.Timeit(nil, "regrid")().
//   - Run executes a function under a deadline and surfaces ErrTimeout
//     when the budget elapses.
//
// Logging goes through the small Logger interface; anything with an
// Infof method fits, including the github.com/apex/log handlers. A nil
// logger falls back to the apex default, and DiscardLogger silences
// timing entirely.
//
// Errors (sentinel):
//
//   - ErrBadStamp – Parse was handed text outside the layout.
//   - ErrTimeout  – Run's budget elapsed before the function returned.
package timex
