package log

// Level is a type alias which is used to indicate the verbosity of a log statement.
type Level uint8

const (
	// LevelDebug includes fine-grained informational events that are the most useful to debug the library.
	LevelDebug Level = iota

	// LevelInfo includes informational messages that highlight the progress of events in the library at a
	// course-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the library to continue running.
	LevelError
)
