package logger

// ErrorSink is a fire-and-forget diagnostics consumer. Components report
// non-fatal errors (e.g. a vault item that failed to decrypt) to the sink
// instead of aborting; no error may be swallowed without at least reaching
// it.
type ErrorSink interface {
	// Capture records err together with a short human-readable context
	// message. Implementations must never block or fail.
	Capture(err error, msg string)
}

// logSink is the default ErrorSink writing to a *Logger.
type logSink struct {
	logger *Logger
}

// NewErrorSink returns an ErrorSink that reports captured errors at error
// level on log.
func NewErrorSink(log *Logger) ErrorSink {
	return &logSink{logger: log}
}

// Capture implements ErrorSink.
func (s *logSink) Capture(err error, msg string) {
	if err == nil {
		return
	}
	s.logger.Err(err).Msg(msg)
}
