package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dockmon/internal/models"
)

func TestExceedsThreshold(t *testing.T) {
	cases := []struct {
		name      string
		usage     float64
		threshold float64
		want      bool
	}{
		{"above", 85.0, 80.0, true},
		{"exactly at threshold does not trigger", 80.0, 80.0, false},
		{"below", 79.9, 80.0, false},
		{"zero threshold", 0.1, 0.0, true},
		{"both zero", 0.0, 0.0, false},
		{"over 100 still triggers", 104.2, 80.0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExceedsThreshold(tc.usage, tc.threshold))
		})
	}
}

func TestFilterHighCPU(t *testing.T) {
	set := []models.ContainerSnapshot{
		{Name: "hot", CPUPercent: 75.5},
		{Name: "warm", CPUPercent: 50.0},
		{Name: "cool", CPUPercent: 30.0},
	}

	high := FilterHighCPU(set, 50.0)
	assert.Len(t, high, 1)
	assert.Equal(t, "hot", high[0].Name)

	// Order of the input is preserved.
	all := FilterHighCPU(set, 10.0)
	assert.Equal(t, []string{"hot", "warm", "cool"}, []string{all[0].Name, all[1].Name, all[2].Name})

	assert.Empty(t, FilterHighCPU(nil, 50.0))
}

func TestCompanionThresholdIsFixed(t *testing.T) {
	assert.Equal(t, 50.0, CompanionContainerThreshold)
}
