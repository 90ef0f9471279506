package docker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"

	"dockmon/internal/models"
)

// Client is a thin wrapper around the Docker SDK exposing only what the
// samplers consume: ping, enumeration, one-shot stats, and daemon info.
type Client struct {
	api *client.Client
}

func New() (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &Client{api: api}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("docker ping: %w", err)
	}
	return nil
}

// ListContainers enumerates all containers known to the daemon, running
// or not.
func (c *Client) ListContainers(ctx context.Context) ([]types.Container, error) {
	containers, err := c.api.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return containers, nil
}

// Stats takes a single non-streaming stats sample. Unlike the one-shot
// variant, this keeps precpu_stats populated, so a delta-based CPU
// percentage is computable from one read.
func (c *Client) Stats(ctx context.Context, id string) (types.StatsJSON, error) {
	res, err := c.api.ContainerStats(ctx, id, false)
	if err != nil {
		return types.StatsJSON{}, fmt.Errorf("container stats %s: %w", id, err)
	}
	defer res.Body.Close()
	var out types.StatsJSON
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return types.StatsJSON{}, fmt.Errorf("decode stats %s: %w", id, err)
	}
	return out, nil
}

func (c *Client) Info(ctx context.Context) (models.DockerInfo, error) {
	info, err := c.api.Info(ctx)
	if err != nil {
		return models.DockerInfo{}, fmt.Errorf("docker info: %w", err)
	}
	version, err := c.api.ServerVersion(ctx)
	if err != nil {
		return models.DockerInfo{}, fmt.Errorf("docker version: %w", err)
	}
	return models.DockerInfo{
		ServerVersion: version.Version,
		APIVersion:    version.APIVersion,
		Containers:    info.Containers,
		Running:       info.ContainersRunning,
		Paused:        info.ContainersPaused,
		Stopped:       info.ContainersStopped,
		Images:        info.Images,
		TotalMemory:   info.MemTotal,
		CPUCount:      info.NCPU,
	}, nil
}

func (c *Client) Close() error {
	return c.api.Close()
}
