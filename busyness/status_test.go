package busyness

import (
	"testing"

	"buzz-server/models"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		hasData    bool
		expected   models.Status
	}{
		{"no data", 0, false, models.STATUS_UNKNOWN},
		{"zero with data", 0, true, models.STATUS_QUIET},
		{"just below moderate", 29, true, models.STATUS_QUIET},
		{"moderate lower bound", 30, true, models.STATUS_MODERATE},
		{"moderate upper bound", 59, true, models.STATUS_MODERATE},
		{"busy lower bound", 60, true, models.STATUS_BUSY},
		{"busy upper bound", 79, true, models.STATUS_BUSY},
		{"very busy lower bound", 80, true, models.STATUS_VERY_BUSY},
		{"maxed out", 100, true, models.STATUS_VERY_BUSY},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClassifyStatus(test.percentage, test.hasData)
			if got != test.expected {
				t.Errorf("ClassifyStatus(%d, %v) = %s, expected %s",
					test.percentage, test.hasData, got, test.expected)
			}
		})
	}
}
