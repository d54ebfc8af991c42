package core

// Logger is implemented by the app loggers in services/logger.
//
// Implementations may inspect args for well-known types (eg. a logged in
// school.User) and attach them as metadata.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
