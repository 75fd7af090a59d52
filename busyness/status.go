package busyness

import "buzz-server/models"

// Classification thresholds (percentage).
const (
	STATUS_MODERATE_THRESHOLD  = 30
	STATUS_BUSY_THRESHOLD      = 60
	STATUS_VERY_BUSY_THRESHOLD = 80
)

// ClassifyStatus maps an occupancy percentage to its busy-ness tier.
// hasData distinguishes a genuinely quiet venue from one with no
// observations at all.
func ClassifyStatus(percentage int, hasData bool) models.Status {
	if !hasData {
		return models.STATUS_UNKNOWN
	}
	switch {
	case percentage >= STATUS_VERY_BUSY_THRESHOLD:
		return models.STATUS_VERY_BUSY
	case percentage >= STATUS_BUSY_THRESHOLD:
		return models.STATUS_BUSY
	case percentage >= STATUS_MODERATE_THRESHOLD:
		return models.STATUS_MODERATE
	default:
		return models.STATUS_QUIET
	}
}
