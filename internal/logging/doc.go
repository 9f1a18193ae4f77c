// Package logging configures the process logger for catlog.
//
// A [Configuration] pairs a verbosity [Level] (ERROR, WARN, INFO, DEBUG,
// TRACE) with a [Destination]: [Stdout], [Stderr] or a [File]. [Activate]
// binds it to log/slog exactly once per process and returns the [Facility]
// handle the entry point passes to everything that logs:
//
//	cfg := logging.NewConfiguration(logging.LevelInfo, logging.File{Path: "catlog.log"})
//	facility, err := logging.Activate(cfg)
//	if err != nil {
//		return err
//	}
//	defer facility.Close()
//	logger := facility.Logger()
//
// A second Activate fails with [ErrAlreadyActivated]. File destinations are
// truncated when activated.
//
// # Testing
//
// [New] builds a logger for any writer without touching process state, and
// [ForTest] routes records into the test log:
//
//	logger := logging.ForTest(t)
package logging
