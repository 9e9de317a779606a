package config

const (
	// EnvLogLevel selects the logrus level.
	EnvLogLevel = "LOG_LEVEL"
	// EnvEchoTimestamp prefixes console and analysis log lines with a timestamp when set to "1".
	EnvEchoTimestamp = "CIJ_ECHO_TIME_STAMP"
	// EnvNoColor disables colored output when set to "1".
	EnvNoColor = "CIJ_NO_COLOR"
	// EnvExtractor names the extractor used when none is given on the command line.
	EnvExtractor = "CIJ_EXTRACTOR"
	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
	// TimestampFormat is the layout of echoed timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
)
