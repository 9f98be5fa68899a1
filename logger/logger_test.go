package logger_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/meta"
)

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "defaults", cfg: logger.Config{}},
		{name: "console", cfg: logger.Config{Level: "info", Encoding: logger.EncodingConsole}},
		{name: "disabled", cfg: logger.Config{Disable: true}},
		{name: "invalid level", cfg: logger.Config{Level: "verbose"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithContext(t *testing.T) {
	l, logs := newObserved()

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.TraceID:     "trace-1",
		meta.AggregateID: "order-1",
	})

	l.WithContext(ctx).Info("handled")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields[string(meta.TraceID)])
	assert.Equal(t, "order-1", fields[string(meta.AggregateID)])
	assert.NotContains(t, fields, string(meta.AggregateVersion))
}

func TestWithContext_NoMeta(t *testing.T) {
	l, logs := newObserved()

	//nolint:staticcheck // nil context is tolerated on purpose
	l.WithContext(nil).Info("a")
	l.WithContext(context.Background()).Info("b")

	require.Equal(t, 2, logs.Len())
	assert.Empty(t, logs.All()[0].ContextMap())
	assert.Empty(t, logs.All()[1].ContextMap())
}

func TestErrorx(t *testing.T) {
	l, logs := newObserved()

	l.Named("orders").Errorx(errx.New("rejected", errx.WithCode("MISSING_TARGET")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "orders", entry.LoggerName)
	assert.Equal(t, "MISSING_TARGET", entry.ContextMap()["error_code"])
}

func TestWarnx_PlainError(t *testing.T) {
	l, logs := newObserved()

	l.Warnx(assert.AnError)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, assert.AnError.Error(), logs.All()[0].Message)
}
