package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Config struct {
	Monitoring MonitoringConfig `json:"monitoring"`
	Email      EmailConfig      `json:"email"`
	Logging    LoggingConfig    `json:"logging"`
}

type MonitoringConfig struct {
	CPUThreshold       float64 `json:"cpu_threshold"`
	CheckInterval      int     `json:"check_interval"`
	DockerStatsTimeout int     `json:"docker_stats_timeout"`
}

type EmailConfig struct {
	Enabled        bool   `json:"enabled"`
	SMTPServer     string `json:"smtp_server"`
	SMTPPort       int    `json:"smtp_port"`
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
	RecipientEmail string `json:"recipient_email"`
}

type LoggingConfig struct {
	Level       string `json:"level"`
	File        string `json:"file"`
	MaxSizeMB   int    `json:"max_size_mb"`
	BackupCount int    `json:"backup_count"`
}

func Default() Config {
	return Config{
		Monitoring: MonitoringConfig{
			CPUThreshold:       80.0,
			CheckInterval:      300,
			DockerStatsTimeout: 10,
		},
		Email: EmailConfig{
			Enabled:    false,
			SMTPServer: "smtp.gmail.com",
			SMTPPort:   587,
		},
		Logging: LoggingConfig{
			Level:       "INFO",
			File:        "monitoring.log",
			MaxSizeMB:   10,
			BackupCount: 5,
		},
	}
}

// Load reads the JSON config at path. Fields absent from the file keep
// their default values. On any failure it returns the defaults together
// with the error so the caller can warn and continue.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (m MonitoringConfig) Interval() time.Duration {
	return time.Duration(m.CheckInterval) * time.Second
}

func (m MonitoringConfig) StatsTimeout() time.Duration {
	return time.Duration(m.DockerStatsTimeout) * time.Second
}
