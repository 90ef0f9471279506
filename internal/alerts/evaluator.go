package alerts

import "dockmon/internal/models"

// CompanionContainerThreshold selects which containers are listed
// alongside a host CPU alert. It is deliberately lower than the
// configured alert threshold and never decides whether to alert.
const CompanionContainerThreshold = 50.0

// ExceedsThreshold reports whether usage is strictly above threshold.
// Equality does not trigger.
func ExceedsThreshold(usage, threshold float64) bool {
	return usage > threshold
}

// FilterHighCPU returns the containers whose CPU usage strictly exceeds
// threshold, preserving the input order.
func FilterHighCPU(set []models.ContainerSnapshot, threshold float64) []models.ContainerSnapshot {
	var high []models.ContainerSnapshot
	for _, c := range set {
		if ExceedsThreshold(c.CPUPercent, threshold) {
			high = append(high, c)
		}
	}
	return high
}
