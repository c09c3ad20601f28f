package logger

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Entry is one captured log line.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
}

// LogBuffer is a fixed-size ring of recent log entries. While the TUI
// owns the terminal, zap writes here instead of stdout and the
// on-screen log tail reads back the most recent lines.
type LogBuffer struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	wrapped bool
	notify  func(Entry)
}

// NewLogBuffer creates a ring holding up to size entries.
func NewLogBuffer(size int) *LogBuffer {
	if size <= 0 {
		size = 256
	}
	return &LogBuffer{entries: make([]Entry, size)}
}

// SetNotify registers a callback invoked after every Add. The UI uses
// it to repaint the log tail as lines arrive; the callback must not
// call back into the buffer.
func (b *LogBuffer) SetNotify(fn func(Entry)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notify = fn
}

// Add appends an entry, evicting the oldest once the ring is full.
func (b *LogBuffer) Add(e Entry) {
	b.mu.Lock()
	b.entries[b.next] = e
	b.next = (b.next + 1) % len(b.entries)
	if b.next == 0 {
		b.wrapped = true
	}
	notify := b.notify
	b.mu.Unlock()

	if notify != nil {
		notify(e)
	}
}

// Recent returns up to limit entries, oldest first.
func (b *LogBuffer) Recent(limit int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := b.next
	start := 0
	if b.wrapped {
		count = len(b.entries)
		start = b.next
	}
	if limit > 0 && limit < count {
		start = (start + count - limit) % len(b.entries)
		count = limit
	}

	out := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, b.entries[(start+i)%len(b.entries)])
	}
	return out
}

// Len returns how many entries the ring currently holds.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wrapped {
		return len(b.entries)
	}
	return b.next
}
