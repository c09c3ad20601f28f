package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zapcore"
)

// Tea message types for UI communication.

// RefreshDoneMsg signals that a full refresh cycle has settled and the
// region store holds fresh snapshots.
type RefreshDoneMsg struct {
	At time.Time
}

// LogMsg carries one log line for the on-screen log tail.
type LogMsg struct {
	Level   zapcore.Level
	Message string
}

// Bus is the global event bus carrying messages from background
// goroutines (the refresh schedule) into the bubbletea loop.
var Bus = make(chan tea.Msg, 256)

// PublishRefreshDone posts a refresh-completed message. Non-blocking:
// if the bus is full the repaint is dropped, the next cycle repaints.
func PublishRefreshDone() {
	select {
	case Bus <- RefreshDoneMsg{At: time.Now()}:
	default:
	}
}

// PublishLog posts a log line to the on-screen tail.
func PublishLog(level zapcore.Level, message string) {
	select {
	case Bus <- LogMsg{Level: level, Message: message}:
	default:
	}
}

// ListenBus returns a tea.Cmd that waits for the next bus message.
func ListenBus() tea.Cmd {
	return func() tea.Msg {
		return <-Bus
	}
}
