// Package notify maps semantic outcomes to short user-facing messages.
// It carries no business logic and no transport: a Notifier only
// dispatches Notifications to whatever Sink it was built with.
package notify

import "github.com/sirupsen/logrus"

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is one user-facing message.
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Sink receives notifications for presentation.
type Sink interface {
	Notify(n Notification)
}

// Notifier dispatches notifications to a single sink.
type Notifier struct {
	sink Sink
}

// New creates a Notifier over the given sink.
func New(sink Sink) *Notifier {
	return &Notifier{sink: sink}
}

// Success emits a success notification.
func (n *Notifier) Success(message string) {
	n.sink.Notify(Notification{Severity: SeveritySuccess, Message: message})
}

// Error emits an error notification.
func (n *Notifier) Error(message string) {
	n.sink.Notify(Notification{Severity: SeverityError, Message: message})
}

// Warning emits a warning notification.
func (n *Notifier) Warning(message string) {
	n.sink.Notify(Notification{Severity: SeverityWarning, Message: message})
}

// Info emits an info notification.
func (n *Notifier) Info(message string) {
	n.sink.Notify(Notification{Severity: SeverityInfo, Message: message})
}

// LogSink writes notifications to a logrus logger, one level per
// severity.
type LogSink struct {
	log *logrus.Logger
}

// NewLogSink creates a Sink backed by the given logger.
func NewLogSink(log *logrus.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(n Notification) {
	entry := s.log.WithField("severity", string(n.Severity))
	switch n.Severity {
	case SeverityError:
		entry.Error(n.Message)
	case SeverityWarning:
		entry.Warn(n.Message)
	default:
		entry.Info(n.Message)
	}
}

// Recorder collects notifications in order. Handlers use it to hand
// messages back to the browser; tests use it to assert on outcomes.
type Recorder struct {
	Notifications []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Fanout duplicates every notification to all of the given sinks.
func Fanout(sinks ...Sink) Sink {
	return fanout(sinks)
}

type fanout []Sink

func (f fanout) Notify(n Notification) {
	for _, s := range f {
		s.Notify(n)
	}
}
