package models

import "time"

type MemoryStats struct {
	Total     uint64
	Used      uint64
	Available uint64
	Percent   float64
}

type DiskStats struct {
	Total     uint64
	Used      uint64
	Available uint64
	Percent   float64
}

type LoadAverage struct {
	One     float64
	Five    float64
	Fifteen float64
}

type SystemInfo struct {
	Hostname    string
	OS          string
	Kernel      string
	CPUCount    int
	CPUBrand    string
	TotalMemory uint64
	BootTime    time.Time
}

// HostSnapshot is a point-in-time reading of host resources. It is built
// fresh per check cycle and never cached across cycles.
type HostSnapshot struct {
	Timestamp  time.Time
	CPUPercent float64
	Memory     MemoryStats
	Disk       DiskStats
	Load       LoadAverage
	System     SystemInfo
}

// ContainerSnapshot is a point-in-time reading of one container. ID is
// truncated to 12 characters and serves as a display identifier only.
type ContainerSnapshot struct {
	ID            string
	Name          string
	Image         string
	Status        string
	CPUPercent    float64
	MemoryUsage   uint64
	MemoryLimit   uint64
	MemoryPercent float64
	Ports         []string
	Timestamp     time.Time
}

type DockerInfo struct {
	ServerVersion string
	APIVersion    string
	Containers    int
	Running       int
	Paused        int
	Stopped       int
	Images        int
	TotalMemory   int64
	CPUCount      int
}

// AlertMessage is a composed subject/body pair, constructed once per
// dispatch and never mutated.
type AlertMessage struct {
	Subject string
	Text    string
	HTML    string
}
