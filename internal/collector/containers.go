package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types"

	"dockmon/internal/docker"
	"dockmon/internal/models"
)

// ContainerAPI is the slice of the runtime client the container sampler
// consumes.
type ContainerAPI interface {
	ListContainers(ctx context.Context) ([]types.Container, error)
	Stats(ctx context.Context, id string) (types.StatsJSON, error)
}

type Containers struct {
	api     ContainerAPI
	log     *slog.Logger
	timeout time.Duration
}

func NewContainers(api ContainerAPI, log *slog.Logger, timeout time.Duration) *Containers {
	return &Containers{api: api, log: log, timeout: timeout}
}

// ListSnapshots enumerates all containers and takes a stats sample for
// each. A container whose stats cannot be read is logged and skipped; the
// call fails only when the enumeration itself fails. The result is sorted
// by CPU usage descending, stable for ties.
func (c *Containers) ListSnapshots(ctx context.Context) ([]models.ContainerSnapshot, error) {
	containers, err := c.api.ListContainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate containers: %w", err)
	}

	snaps := make([]models.ContainerSnapshot, 0, len(containers))
	for _, ctr := range containers {
		snap, err := c.snapshot(ctx, ctr)
		if err != nil {
			c.log.Error("container stats", "id", shortID(ctr.ID), "err", err)
			continue
		}
		snaps = append(snaps, snap)
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].CPUPercent > snaps[j].CPUPercent
	})
	return snaps, nil
}

// snapshot reads one container's stats. The configured timeout bounds
// each read separately: a non-streaming stats call takes the daemon a
// couple of seconds, so a shared budget across the whole pass would
// starve containers late in the listing order.
func (c *Containers) snapshot(ctx context.Context, ctr types.Container) (models.ContainerSnapshot, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stats, err := c.api.Stats(ctx, ctr.ID)
	if err != nil {
		return models.ContainerSnapshot{}, err
	}

	usage := stats.MemoryStats.Usage
	limit := stats.MemoryStats.Limit
	return models.ContainerSnapshot{
		ID:            shortID(ctr.ID),
		Name:          containerName(ctr),
		Image:         ctr.Image,
		Status:        ctr.Status,
		CPUPercent:    docker.CPUPercent(stats),
		MemoryUsage:   usage,
		MemoryLimit:   limit,
		MemoryPercent: docker.MemoryPercent(usage, limit),
		Ports:         docker.FormatPorts(ctr.Ports),
		Timestamp:     time.Now().UTC(),
	}, nil
}

func containerName(ctr types.Container) string {
	if len(ctr.Names) > 0 {
		return strings.TrimPrefix(ctr.Names[0], "/")
	}
	return shortID(ctr.ID)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
