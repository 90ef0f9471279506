package docker

import (
	"fmt"

	"github.com/docker/docker/api/types"
)

// CPUPercent computes container CPU usage from the cumulative counters of
// one stats read: (Δcontainer / Δsystem) * cpus * 100. Returns 0 when the
// deltas are unusable (first read after start, counter wrap).
func CPUPercent(s types.StatsJSON) float64 {
	sysDelta := float64(s.CPUStats.SystemUsage) - float64(s.PreCPUStats.SystemUsage)
	cpuDelta := float64(s.CPUStats.CPUUsage.TotalUsage) - float64(s.PreCPUStats.CPUUsage.TotalUsage)
	cpus := float64(s.CPUStats.OnlineCPUs)
	if cpus == 0 {
		cpus = float64(len(s.CPUStats.CPUUsage.PercpuUsage))
		if cpus == 0 {
			cpus = 1
		}
	}
	if sysDelta > 0 && cpuDelta >= 0 {
		return (cpuDelta / sysDelta) * cpus * 100
	}
	return 0
}

// MemoryPercent guards against a zero limit (unlimited containers report
// limit 0 on some cgroup drivers).
func MemoryPercent(usage, limit uint64) float64 {
	if limit == 0 {
		return 0
	}
	return (float64(usage) / float64(limit)) * 100
}

// FormatPorts renders port mappings the way `docker ps` does.
func FormatPorts(ports []types.Port) []string {
	if len(ports) == 0 {
		return nil
	}
	out := make([]string, 0, len(ports))
	for _, p := range ports {
		switch {
		case p.PublicPort != 0 && p.IP != "":
			out = append(out, fmt.Sprintf("%s:%d->%d/%s", p.IP, p.PublicPort, p.PrivatePort, p.Type))
		case p.PublicPort != 0:
			out = append(out, fmt.Sprintf("%d->%d/%s", p.PublicPort, p.PrivatePort, p.Type))
		default:
			out = append(out, fmt.Sprintf("%d/%s", p.PrivatePort, p.Type))
		}
	}
	return out
}
