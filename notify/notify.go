package notify

import (
	"github.com/cmgoes/zigzag-frontend/logger"
	"github.com/cmgoes/zigzag-frontend/rollup"
)

// LogSink routes user-facing notices through the structured logger. A UI
// front end would replace this with toast-style display; nothing in the
// core depends on what the sink does with the events.
type LogSink struct {
	logger logger.Logger
}

func NewLogSink(logger logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Info(event, message string) {
	s.logger.Info(event, "msg", message)
}

func (s *LogSink) Error(event, message string) {
	s.logger.Error(event, "msg", message)
}

var _ rollup.NotificationSink = (*LogSink)(nil)
