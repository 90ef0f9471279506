package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"dockmon/internal/models"
)

// cpuSampleWindow is the interval over which host CPU usage is measured.
// A zero interval would compare against the previous call, which reads 0
// on the first sample of a single-shot run.
const cpuSampleWindow = time.Second

type Host struct {
	log *slog.Logger
}

func NewHost(log *slog.Logger) *Host {
	return &Host{log: log}
}

// Sample reads CPU, memory, disk, load average, and system info in one
// pass. CPU being unreadable fails the snapshot; the other readings
// degrade to zeroed fields with a warning, so one missing source never
// loses the whole snapshot.
func (h *Host) Sample(ctx context.Context) (models.HostSnapshot, error) {
	snap := models.HostSnapshot{Timestamp: time.Now().UTC()}

	pcts, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return models.HostSnapshot{}, fmt.Errorf("read cpu usage: %w", err)
	}
	if len(pcts) > 0 {
		snap.CPUPercent = pcts[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		h.log.Warn("read memory usage", "err", err)
	} else {
		snap.Memory = models.MemoryStats{
			Total:     vm.Total,
			Used:      vm.Used,
			Available: vm.Available,
			Percent:   vm.UsedPercent,
		}
	}

	if du, err := disk.UsageWithContext(ctx, "/"); err != nil {
		h.log.Warn("read disk usage", "err", err)
	} else {
		snap.Disk = models.DiskStats{
			Total:     du.Total,
			Used:      du.Used,
			Available: du.Free,
			Percent:   du.UsedPercent,
		}
	}

	if avg, err := load.AvgWithContext(ctx); err != nil {
		h.log.Warn("read load average", "err", err)
	} else {
		snap.Load = models.LoadAverage{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}
	}

	snap.System = h.systemInfo(ctx)
	// Reuse the reading above so memory figures agree within one snapshot.
	snap.System.TotalMemory = snap.Memory.Total
	return snap, nil
}

func (h *Host) systemInfo(ctx context.Context) models.SystemInfo {
	var info models.SystemInfo
	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		h.log.Warn("read host info", "err", err)
	} else {
		info.Hostname = hi.Hostname
		info.OS = fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
		info.Kernel = hi.KernelVersion
		info.BootTime = time.Unix(int64(hi.BootTime), 0).UTC()
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPUCount = n
	}
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUBrand = cpus[0].ModelName
	}
	return info
}
