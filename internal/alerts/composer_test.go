package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dockmon/internal/models"
)

var testTime = time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

func TestStripHTMLTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tags removed and blank lines collapsed", "<b>x</b>\n\n<i>y</i>", "x\ny"},
		{"plain string is identity", "already plain", "already plain"},
		{"plain string trimmed", "  padded  ", "padded"},
		{"only tags", "<html><body></body></html>", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTMLTags(tc.in))
		})
	}
}

func TestComposeHostCPUAlert(t *testing.T) {
	containers := []models.ContainerSnapshot{
		{Name: "web", CPUPercent: 72.5, MemoryPercent: 41.0, Image: "nginx:latest"},
	}
	msg := ComposeHostCPUAlert(testTime, 91.3, 80.0, containers)

	assert.Contains(t, msg.Subject, "HIGH CPU USAGE ALERT")
	assert.Contains(t, msg.Subject, "2026-08-26 14:30:00")
	assert.Contains(t, msg.HTML, "91.30%")
	assert.Contains(t, msg.HTML, "80.00%")
	assert.Contains(t, msg.HTML, "<td style='padding: 8px;'>web</td>")
	assert.Contains(t, msg.HTML, "nginx:latest")
	// Plain body carries the same facts without markup.
	assert.Contains(t, msg.Text, "91.30%")
	assert.NotContains(t, msg.Text, "<")
}

func TestComposeHostCPUAlertEmptyContainerList(t *testing.T) {
	msg := ComposeHostCPUAlert(testTime, 91.3, 80.0, nil)

	assert.Contains(t, msg.HTML, "No specific containers with high CPU usage detected.")
	assert.NotContains(t, msg.HTML, "<table")
}

func TestComposeContainerCPUAlert(t *testing.T) {
	containers := []models.ContainerSnapshot{
		{Name: "worker", CPUPercent: 95.1, MemoryPercent: 12.0, Image: "worker:2", Status: "Up 3 days"},
	}
	msg := ComposeContainerCPUAlert(testTime, containers)

	assert.Contains(t, msg.Subject, "HIGH CONTAINER CPU ALERT")
	assert.Contains(t, msg.HTML, "worker")
	// Detailed table includes the Status column.
	assert.Contains(t, msg.HTML, "Status")
	assert.Contains(t, msg.HTML, "Up 3 days")
}

func TestComposeTestMessage(t *testing.T) {
	msg := ComposeTestMessage(testTime)

	assert.Contains(t, msg.Subject, "Test Email")
	assert.Contains(t, msg.HTML, "2026-08-26 14:30:00")
	assert.Contains(t, msg.Text, "email configuration is working correctly")
}

func TestContainerTableColumns(t *testing.T) {
	containers := []models.ContainerSnapshot{{Name: "a", Image: "i"}}

	basic := containerTable(containers, false)
	detailed := containerTable(containers, true)

	for _, col := range []string{"Container Name", "CPU Usage", "Memory Usage", "Image"} {
		assert.Contains(t, basic, col)
	}
	assert.NotContains(t, basic, "Status")
	assert.Equal(t, 1, strings.Count(detailed, "Status"))
}
