package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"dockmon/internal/alerts"
	"dockmon/internal/collector"
	"dockmon/internal/config"
	"dockmon/internal/docker"
	"dockmon/internal/models"
	"dockmon/internal/notifier"
)

type hostSampler interface {
	Sample(ctx context.Context) (models.HostSnapshot, error)
}

type containerSampler interface {
	ListSnapshots(ctx context.Context) ([]models.ContainerSnapshot, error)
}

type runtimeInfo interface {
	Info(ctx context.Context) (models.DockerInfo, error)
}

type sender interface {
	Send(msg models.AlertMessage) bool
}

// App sequences one check cycle (sample, evaluate, compose, dispatch) and
// owns the continuous-loop execution model. It holds sampler and notifier
// handles between cycles, never snapshot data.
type App struct {
	cfg config.Config
	log *slog.Logger

	host       hostSampler
	containers containerSampler
	runtime    runtimeInfo
	notify     sender
	now        func() time.Time
	close      func() error
}

// New wires the samplers and the notifier. Failure to reach the Docker
// daemon here is fatal: the process must not monitor anything without a
// container runtime connection. Host telemetry is never probed at
// construction.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	dc, err := docker.New()
	if err != nil {
		return nil, err
	}
	if err := dc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("docker connection failed: %w", err)
	}
	log.Info("connected to docker daemon")
	log.Info("performance monitor initialized", "cpu_threshold", cfg.Monitoring.CPUThreshold)

	return &App{
		cfg:        cfg,
		log:        log,
		host:       collector.NewHost(log.With("module", "host")),
		containers: collector.NewContainers(dc, log.With("module", "containers"), cfg.Monitoring.StatsTimeout()),
		runtime:    dc,
		notify:     notifier.NewEmail(cfg.Email, log.With("module", "notifier")),
		now:        time.Now,
		close:      dc.Close,
	}, nil
}

// Close releases the container runtime connection.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// RunCheck performs one full cycle and reports whether any alert
// triggered. Host sampling failure degrades the host evaluation;
// enumeration failure degrades the container evaluation; neither fails
// the cycle.
func (a *App) RunCheck(ctx context.Context) bool {
	a.log.Info("starting monitoring check")
	threshold := a.cfg.Monitoring.CPUThreshold

	var hostCPU float64
	hostSampled := false
	if snap, err := a.host.Sample(ctx); err != nil {
		a.log.Error("sample host telemetry", "err", err)
	} else {
		hostCPU = snap.CPUPercent
		hostSampled = true
	}

	set, err := a.containers.ListSnapshots(ctx)
	if err != nil {
		a.log.Error("sample containers", "err", err)
		set = nil
	}

	hostHigh := hostSampled && alerts.ExceedsThreshold(hostCPU, threshold)
	highContainers := alerts.FilterHighCPU(set, threshold)

	if hostHigh {
		a.log.Warn("high server CPU usage detected", "cpu", fmt.Sprintf("%.2f%%", hostCPU), "threshold", threshold)
		companions := alerts.FilterHighCPU(set, alerts.CompanionContainerThreshold)
		msg := alerts.ComposeHostCPUAlert(a.now().UTC(), hostCPU, threshold, companions)
		if a.notify.Send(msg) {
			a.log.Info("cpu alert email sent")
		} else {
			a.log.Error("failed to send cpu alert email")
		}
	} else if hostSampled {
		a.log.Info("server CPU usage is normal", "cpu", fmt.Sprintf("%.2f%%", hostCPU))
	}

	if len(highContainers) > 0 {
		a.log.Warn("high CPU usage detected in containers", "count", len(highContainers))
		for _, c := range highContainers {
			a.log.Warn("high CPU container", "name", c.Name, "cpu", fmt.Sprintf("%.2f%%", c.CPUPercent))
		}
		msg := alerts.ComposeContainerCPUAlert(a.now().UTC(), highContainers)
		if a.notify.Send(msg) {
			a.log.Info("container cpu alert email sent")
		} else {
			a.log.Error("failed to send container cpu alert email")
		}
	} else {
		a.log.Info("all containers have normal CPU usage")
	}

	a.log.Info("monitoring check completed",
		"server_cpu", fmt.Sprintf("%.2f%%", hostCPU),
		"high_cpu_containers", len(highContainers))
	return hostHigh || len(highContainers) > 0
}

// RunContinuous repeats check cycles separated by the configured
// interval until ctx is cancelled. Cycles are strictly sequential; the
// sleep is the only suspension point between them.
func (a *App) RunContinuous(ctx context.Context, out io.Writer) error {
	interval := a.cfg.Monitoring.Interval()
	a.log.Info("starting continuous monitoring", "interval", interval)

	for {
		fmt.Fprintln(out, Verdict(a.RunCheck(ctx)))

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// SendTestEmail dispatches a test message through the notifier and
// reports whether the transport accepted it.
func (a *App) SendTestEmail() bool {
	a.log.Info("testing email configuration")
	return a.notify.Send(alerts.ComposeTestMessage(a.now().UTC()))
}

// Verdict is the one-line result printed after a check cycle.
func Verdict(triggered bool) string {
	if triggered {
		return "⚠️  High CPU usage detected! Check your email for alerts."
	}
	return "✅ All systems normal."
}

// PrintStatus writes a human-readable snapshot of host and container
// state. Container and daemon-info failures degrade to empty sections;
// only host sampling failure aborts the report.
func (a *App) PrintStatus(ctx context.Context, out io.Writer) error {
	snap, err := a.host.Sample(ctx)
	if err != nil {
		return fmt.Errorf("sample host telemetry: %w", err)
	}
	set, err := a.containers.ListSnapshots(ctx)
	if err != nil {
		a.log.Error("sample containers", "err", err)
		set = nil
	}
	info, err := a.runtime.Info(ctx)
	if err != nil {
		a.log.Error("docker system info", "err", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintf(out, "SYSTEM STATUS - %s\n", snap.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "%s\n", rule)

	fmt.Fprintf(out, "\n🖥️  SERVER:\n")
	fmt.Fprintf(out, "   CPU Usage: %.2f%%\n", snap.CPUPercent)
	fmt.Fprintf(out, "   Memory Usage: %.2f%% (%s / %s)\n", snap.Memory.Percent,
		humanize.IBytes(snap.Memory.Used), humanize.IBytes(snap.Memory.Total))
	fmt.Fprintf(out, "   Disk Usage: %.2f%% (%s / %s)\n", snap.Disk.Percent,
		humanize.IBytes(snap.Disk.Used), humanize.IBytes(snap.Disk.Total))
	fmt.Fprintf(out, "   Load Average: %.2f %.2f %.2f\n", snap.Load.One, snap.Load.Five, snap.Load.Fifteen)

	fmt.Fprintf(out, "\n🐳 DOCKER:\n")
	fmt.Fprintf(out, "   Running Containers: %d\n", info.Running)
	fmt.Fprintf(out, "   Total Containers: %d\n", info.Containers)

	if len(set) > 0 {
		fmt.Fprintf(out, "\n   Top CPU Containers:\n")
		for i, c := range set {
			if i == 5 {
				break
			}
			fmt.Fprintf(out, "   %d. %s: %.2f%% CPU\n", i+1, c.Name, c.CPUPercent)
		}
	}

	fmt.Fprintf(out, "\n%s\n", rule)
	return nil
}
