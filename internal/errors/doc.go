// Package errors provides error handling conventions for the catlog CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// call sites only import one errors package, defines exit codes and the
// [ExitError] type used by the command layer, and classifies file system
// failures into [IOError] values with one message per failure kind.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flags, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, logging activation, etc.)
//
// # I/O Failures
//
// Wrap any error returned from the os or io packages with [NewIOError]:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errors.NewIOError(errors.OpOpen, path, err)
//	}
//
// The resulting error reports a message specific to its [IOKind] ("File not
// found: ...", "Broken pipe: ...") and still unwraps to the original cause,
// so errors.Is(err, fs.ErrNotExist) keeps working.
package errors
