package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSample(t *testing.T) {
	h := NewHost(discard())

	snap, err := h.Sample(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Timestamp.IsZero())
	assert.GreaterOrEqual(t, snap.CPUPercent, 0.0)
	assert.LessOrEqual(t, snap.Memory.Percent, 100.0)
	// One memory reading feeds the whole snapshot.
	assert.Equal(t, snap.Memory.Total, snap.System.TotalMemory)
}
