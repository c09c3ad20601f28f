package logger

import "go.uber.org/zap/zapcore"

// bufferCore is a zapcore.Core that appends entries to a LogBuffer.
type bufferCore struct {
	buffer *LogBuffer
	level  zapcore.Level
}

func newBufferCore(buffer *LogBuffer, level zapcore.Level) zapcore.Core {
	return &bufferCore{buffer: buffer, level: level}
}

func (c *bufferCore) Enabled(level zapcore.Level) bool {
	return level >= c.level
}

func (c *bufferCore) With(fields []zapcore.Field) zapcore.Core {
	// Structured fields are dropped from the on-screen tail; the
	// optional JSON file core keeps them.
	return c
}

func (c *bufferCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *bufferCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	msg := entry.Message
	if entry.LoggerName != "" {
		msg = entry.LoggerName + ": " + msg
	}
	c.buffer.Add(Entry{
		Time:    entry.Time,
		Level:   entry.Level,
		Message: msg,
	})
	return nil
}

func (c *bufferCore) Sync() error { return nil }
