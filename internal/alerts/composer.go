package alerts

import (
	"fmt"
	"strings"
	"time"

	"dockmon/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

const noContainersText = "<p>No specific containers with high CPU usage detected.</p>"

// ComposeHostCPUAlert builds the alert sent when host CPU exceeds the
// configured threshold. Companion containers are the ones listed
// alongside, not the reason for the alert.
func ComposeHostCPUAlert(now time.Time, cpuUsage, threshold float64, companions []models.ContainerSnapshot) models.AlertMessage {
	subject := fmt.Sprintf("🚨 HIGH CPU USAGE ALERT - %s", now.Format(timeFormat))
	html := fmt.Sprintf(`<html>
<body>
<h2>🚨 HIGH CPU USAGE ALERT</h2>
<p><strong>Time:</strong> %s</p>
<h3>📊 Server CPU Usage</h3>
<p><strong>Current CPU Usage:</strong> <span style="color: red; font-size: 18px; font-weight: bold;">%.2f%%</span></p>
<p><strong>Threshold:</strong> %.2f%%</p>
<h3>🐳 High CPU Docker Containers</h3>
%s
<br>
<p><em>This is an automated alert from your Docker & Server Performance Monitoring System.</em></p>
<p><em>Please check your server and containers immediately.</em></p>
</body>
</html>`, now.Format(timeFormat), cpuUsage, threshold, containerTable(companions, false))
	return compose(subject, html)
}

// ComposeContainerCPUAlert builds the alert sent when one or more
// containers exceed the configured threshold.
func ComposeContainerCPUAlert(now time.Time, containers []models.ContainerSnapshot) models.AlertMessage {
	subject := fmt.Sprintf("🐳 HIGH CONTAINER CPU ALERT - %s", now.Format(timeFormat))
	html := fmt.Sprintf(`<html>
<body>
<h2>🐳 HIGH CONTAINER CPU USAGE ALERT</h2>
<p><strong>Time:</strong> %s</p>
<h3>🔥 High CPU Docker Containers</h3>
%s
<br>
<p><em>This is an automated alert from your Docker & Server Performance Monitoring System.</em></p>
<p><em>Please check the highlighted containers immediately.</em></p>
</body>
</html>`, now.Format(timeFormat), containerTable(containers, true))
	return compose(subject, html)
}

func ComposeTestMessage(now time.Time) models.AlertMessage {
	subject := "🧪 Test Email - Docker & Server Performance Monitoring"
	html := fmt.Sprintf(`<html>
<body>
<h2>🧪 Test Email</h2>
<p>This is a test email from your Docker & Server Performance Monitoring System.</p>
<p><strong>Time:</strong> %s</p>
<p>If you receive this email, your email configuration is working correctly.</p>
<br>
<p><em>System is ready to send alerts when CPU usage exceeds the threshold.</em></p>
</body>
</html>`, now.Format(timeFormat))
	return compose(subject, html)
}

func compose(subject, html string) models.AlertMessage {
	return models.AlertMessage{
		Subject: subject,
		Text:    StripHTMLTags(html),
		HTML:    html,
	}
}

// containerTable renders an HTML table of containers; the detailed
// variant adds a Status column. An empty set renders an explanatory
// sentence instead of an empty table.
func containerTable(containers []models.ContainerSnapshot, detailed bool) string {
	if len(containers) == 0 {
		return noContainersText
	}

	var b strings.Builder
	b.WriteString("<table border='1' style='border-collapse: collapse; width: 100%;'>")
	b.WriteString("<tr style='background-color: #f2f2f2;'>")
	b.WriteString("<th style='padding: 8px; text-align: left;'>Container Name</th>")
	b.WriteString("<th style='padding: 8px; text-align: left;'>CPU Usage</th>")
	b.WriteString("<th style='padding: 8px; text-align: left;'>Memory Usage</th>")
	b.WriteString("<th style='padding: 8px; text-align: left;'>Image</th>")
	if detailed {
		b.WriteString("<th style='padding: 8px; text-align: left;'>Status</th>")
	}
	b.WriteString("</tr>")

	for _, c := range containers {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td style='padding: 8px;'>%s</td>", c.Name)
		fmt.Fprintf(&b, "<td style='padding: 8px; color: red; font-weight: bold;'>%.2f%%</td>", c.CPUPercent)
		fmt.Fprintf(&b, "<td style='padding: 8px;'>%.2f%%</td>", c.MemoryPercent)
		fmt.Fprintf(&b, "<td style='padding: 8px;'>%s</td>", c.Image)
		if detailed {
			fmt.Fprintf(&b, "<td style='padding: 8px;'>%s</td>", c.Status)
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</table>")
	return b.String()
}

// StripHTMLTags drops every run between '<' and '>', trims each line, and
// removes blank lines. Stripping an already-plain string is the identity
// modulo whitespace trimming.
func StripHTMLTags(html string) string {
	var plain strings.Builder
	inTag := false
	for _, ch := range html {
		switch {
		case ch == '<':
			inTag = true
		case ch == '>':
			inTag = false
		case !inTag:
			plain.WriteRune(ch)
		}
	}

	var lines []string
	for _, line := range strings.Split(plain.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
