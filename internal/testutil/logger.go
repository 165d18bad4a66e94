package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/dayplan/internal/ports"
)

// NopLogger — логгер-заглушка для тестов.
type NopLogger struct{}

var _ ports.Logger = (*NopLogger)(nil)

func (NopLogger) Infof(context.Context, string, ...any)  {}
func (NopLogger) Warnf(context.Context, string, ...any)  {}
func (NopLogger) Errorf(context.Context, string, ...any) {}

// RecordingLogger — логгер, запоминающий сообщения; удобен для проверки
// того, что слой залогировал предупреждение, не падая.
type RecordingLogger struct {
	mu       sync.Mutex
	Messages []string
}

var _ ports.Logger = (*RecordingLogger)(nil)

func (l *RecordingLogger) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, level+": "+fmt.Sprintf(format, args...))
}

func (l *RecordingLogger) Infof(_ context.Context, format string, args ...any) {
	l.record("info", format, args...)
}

func (l *RecordingLogger) Warnf(_ context.Context, format string, args ...any) {
	l.record("warn", format, args...)
}

func (l *RecordingLogger) Errorf(_ context.Context, format string, args ...any) {
	l.record("error", format, args...)
}
