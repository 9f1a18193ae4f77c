package logging

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Configuration pairs a verbosity level with an output destination.
// It may be changed freely until it is passed to [Activate].
type Configuration struct {
	level        Level
	destination  Destination
	format       Format
	mirrorStderr bool
}

// NewConfiguration returns a text-format configuration for the given level
// and destination.
func NewConfiguration(level Level, destination Destination) *Configuration {
	return &Configuration{
		level:       level,
		destination: destination,
		format:      FormatText,
	}
}

// Level returns the minimum level that will be emitted.
func (c *Configuration) Level() Level { return c.level }

// SetLevel replaces the minimum level.
func (c *Configuration) SetLevel(level Level) { c.level = level }

// Destination returns the configured destination. A nil destination means
// standard error.
func (c *Configuration) Destination() Destination { return c.destination }

// SetDestination replaces the destination.
func (c *Configuration) SetDestination(d Destination) { c.destination = d }

// Format returns the record format.
func (c *Configuration) Format() Format { return c.format }

// SetFormat replaces the record format. Unknown formats render as text.
func (c *Configuration) SetFormat(f Format) { c.format = f }

// MirrorStderr reports whether WARN and ERROR records are copied to standard
// error when the destination is a file.
func (c *Configuration) MirrorStderr() bool { return c.mirrorStderr }

// SetMirrorStderr toggles copying WARN and ERROR records to standard error
// for file destinations.
func (c *Configuration) SetMirrorStderr(on bool) { c.mirrorStderr = on }
