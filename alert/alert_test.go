package alert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdtarget/alert"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := alert.NewProvider(alert.Config{Disable: true}, "orders", "v1.0.0")
	require.NoError(t, err)

	assert.NoError(t, p.SendError(t.Context(), "INTERNAL", "boom", "command: ship_order", nil))
}

func TestSentinelProvider_Unreachable(t *testing.T) {
	p, err := alert.NewSentinelProvider(alert.Config{
		SentinelHost: "127.0.0.1",
		SentinelPort: 1,
		SendTimeout:  200 * time.Millisecond,
	}, "orders", "v1.0.0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	details := map[string]string{"trace_id": "trace-1"}
	err = p.SendError(t.Context(), "INTERNAL", "boom", "command: ship_order", details)

	require.Error(t, err)
	assert.Equal(t, map[string]string{"trace_id": "trace-1"}, details)
}
