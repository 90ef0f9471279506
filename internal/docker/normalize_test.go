package docker

import (
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"
)

func TestCPUPercent(t *testing.T) {
	var s types.StatsJSON
	s.PreCPUStats.CPUUsage.TotalUsage = 100
	s.PreCPUStats.SystemUsage = 100
	s.CPUStats.CPUUsage.TotalUsage = 150
	s.CPUStats.SystemUsage = 200
	s.CPUStats.OnlineCPUs = 2

	// 50/100 * 2 * 100 = 100%
	assert.InDelta(t, 100.0, CPUPercent(s), 0.001)
}

func TestCPUPercentFallsBackToPercpuCount(t *testing.T) {
	var s types.StatsJSON
	s.CPUStats.CPUUsage.TotalUsage = 110
	s.CPUStats.SystemUsage = 200
	s.PreCPUStats.CPUUsage.TotalUsage = 100
	s.PreCPUStats.SystemUsage = 100
	s.CPUStats.CPUUsage.PercpuUsage = []uint64{1, 2, 3, 4}

	// 10/100 * 4 * 100 = 40%
	assert.InDelta(t, 40.0, CPUPercent(s), 0.001)
}

func TestCPUPercentZeroOnUnusableDeltas(t *testing.T) {
	var s types.StatsJSON
	// No precpu sample yet: system delta equals zero.
	s.CPUStats.CPUUsage.TotalUsage = 150
	assert.Zero(t, CPUPercent(s))

	// Counter went backwards.
	s.CPUStats.SystemUsage = 200
	s.PreCPUStats.SystemUsage = 100
	s.PreCPUStats.CPUUsage.TotalUsage = 300
	assert.Zero(t, CPUPercent(s))
}

func TestMemoryPercent(t *testing.T) {
	assert.Zero(t, MemoryPercent(512, 0))
	assert.Zero(t, MemoryPercent(0, 0))
	assert.InDelta(t, 50.0, MemoryPercent(512, 1024), 0.001)
}

func TestFormatPorts(t *testing.T) {
	ports := []types.Port{
		{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
		{PrivatePort: 443, PublicPort: 8443, Type: "tcp"},
		{PrivatePort: 5432, Type: "tcp"},
	}
	assert.Equal(t, []string{"0.0.0.0:8080->80/tcp", "8443->443/tcp", "5432/tcp"}, FormatPorts(ports))
	assert.Nil(t, FormatPorts(nil))
}
