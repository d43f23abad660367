package xlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConsoleCore(t *testing.T) {
	lvlEnabler := zap.NewAtomicLevelAt(LogLevelDebug.zapLevel())
	cc := newConsoleCore(
		&lvlEnabler,
		JSON,
		zapcore.CapitalLevelEncoder,
		zapcore.ISO8601TimeEncoder,
	)
	require.NotNil(t, cc.outEncoder())
	require.Equal(t, stdout, cc.writeSyncer())
	require.NotNil(t, cc.levelEncoder())
	require.NotNil(t, cc.timeEncoder())
	require.NotNil(t, cc.(*consoleCore).core.core)

	require.True(t, cc.Enabled(zapcore.DebugLevel))
	require.True(t, cc.Enabled(zapcore.InfoLevel))

	lvlEnabler.SetLevel(zapcore.ErrorLevel)
	require.False(t, cc.Enabled(zapcore.DebugLevel))
	require.False(t, cc.Enabled(zapcore.InfoLevel))
	require.False(t, cc.Enabled(zapcore.WarnLevel))
	require.True(t, cc.Enabled(zapcore.ErrorLevel))
}

func TestWriterCore(t *testing.T) {
	buf := &bytes.Buffer{}
	lvlEnabler := zap.NewAtomicLevelAt(LogLevelInfo.zapLevel())
	cc := newWriterCore(buf)(
		&lvlEnabler,
		PlainText,
		zapcore.CapitalLevelEncoder,
		zapcore.ISO8601TimeEncoder,
	)

	require.Nil(t, cc.Check(zapcore.Entry{Level: zapcore.DebugLevel}, nil))
	ent := cc.Check(zapcore.Entry{Level: zapcore.InfoLevel, Message: "plain"}, nil)
	require.NotNil(t, ent)
	require.NoError(t, cc.Write(ent.Entry, []zap.Field{zap.Int("n", 1)}))
	require.NoError(t, cc.Sync())
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "plain")
	require.Contains(t, buf.String(), `{"n": 1}`)
}
