package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func drainBus() {
	for {
		select {
		case <-Bus:
		default:
			return
		}
	}
}

func TestPublishLog_DeliversToBus(t *testing.T) {
	drainBus()
	PublishLog(zapcore.WarnLevel, "funding fetch failed")

	select {
	case msg := <-Bus:
		logMsg, ok := msg.(LogMsg)
		require.True(t, ok)
		assert.Equal(t, zapcore.WarnLevel, logMsg.Level)
		assert.Equal(t, "funding fetch failed", logMsg.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log message on the bus")
	}
}

func TestPublish_DropsInsteadOfBlockingWhenFull(t *testing.T) {
	drainBus()
	for i := 0; i < cap(Bus); i++ {
		Bus <- RefreshDoneMsg{}
	}

	done := make(chan struct{})
	go func() {
		PublishRefreshDone()
		PublishLog(zapcore.InfoLevel, "dropped")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publishers must never block the refresh pipeline")
	}
	drainBus()
}
