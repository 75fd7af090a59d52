package busyness

import (
	"math/rand"
	"sync"
	"time"

	"buzz-server/models"
)

// Generator produces plausible occupancy curves for venues without a live
// data source. The base curve is a pure function of (category, hour,
// day type); the random source only feeds the per-hour jitter, so tests can
// disable it and assert the base curve exactly. One Generator is shared by
// all request goroutines; the jitter source is guarded by mu because
// rand.Rand with a custom source is not goroutine-safe.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	jitterRange int
}

// NewGenerator creates a Generator with per-hour jitter in [-jitterRange, +jitterRange].
func NewGenerator(seed int64, jitterRange int) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		jitterRange: jitterRange,
	}
}

// NewDeterministicGenerator creates a Generator with jitter disabled.
func NewDeterministicGenerator() *Generator {
	return &Generator{jitterRange: 0}
}

// IsWeekend reports whether the day-of-week (Sunday=0) is Saturday or Sunday.
func IsWeekend(dayOfWeek int) bool {
	return dayOfWeek == 0 || dayOfWeek == 6
}

// IsFriday reports whether the day-of-week (Sunday=0) is Friday.
func IsFriday(dayOfWeek int) bool {
	return dayOfWeek == 5
}

// BaseCurvePercentage is the hand-authored hour -> base occupancy step
// function, before jitter. Pure and deterministic.
func BaseCurvePercentage(category Category, hour int, isWeekend, isFriday bool) int {
	bigNight := isWeekend || isFriday

	switch category {
	case CategoryBar:
		pct := 0
		switch {
		case hour == 0:
			pct = 55
		case hour == 1:
			pct = 40
		case hour == 2:
			pct = 25
		case hour == 3:
			pct = 10
		case hour <= 10:
			pct = 0
		case hour <= 14:
			pct = 10
		case hour <= 16:
			pct = 15
		case hour == 17:
			pct = 25
		case hour == 18:
			pct = 35
		case hour == 19:
			pct = 45
		case hour == 20:
			pct = 55
		case hour == 21:
			pct = 65
		case hour == 22:
			pct = 75
		default: // 23
			pct = 70
		}
		if bigNight {
			// Nightlife crowd swells late on Friday and weekends.
			if hour >= 20 || hour <= 2 {
				pct += 20
			} else if hour >= 17 {
				pct += 10
			}
		}
		return pct

	case CategoryRestaurant:
		pct := 0
		switch {
		case hour <= 6:
			pct = 0
		case hour <= 9:
			pct = 10
		case hour == 10:
			pct = 15
		case hour == 11:
			pct = 30
		case hour == 12:
			pct = 60
		case hour == 13:
			pct = 55
		case hour == 14:
			pct = 30
		case hour <= 16:
			pct = 20
		case hour == 17:
			pct = 30
		case hour == 18:
			pct = 50
		case hour == 19:
			pct = 65
		case hour == 20:
			pct = 60
		case hour == 21:
			pct = 40
		case hour == 22:
			pct = 20
		default: // 23
			pct = 5
		}
		if bigNight {
			if hour >= 12 && hour <= 14 {
				pct += 10
			}
			if hour >= 18 && hour <= 21 {
				pct += 15
			}
		}
		return pct

	case CategoryCafe:
		pct := 0
		switch {
		case hour <= 5:
			pct = 0
		case hour == 6:
			pct = 10
		case hour == 7:
			pct = 30
		case hour == 8:
			pct = 55
		case hour == 9:
			pct = 60
		case hour == 10:
			pct = 55
		case hour == 11:
			pct = 45
		case hour == 12:
			pct = 50
		case hour == 13:
			pct = 40
		case hour <= 16:
			pct = 35
		case hour == 17:
			pct = 20
		case hour == 18:
			pct = 10
		case hour == 19:
			pct = 5
		default:
			pct = 0
		}
		if isWeekend && hour >= 9 && hour <= 15 {
			// Weekend brunch crowd.
			pct += 15
		}
		return pct

	default: // CategoryGeneric
		pct := 0
		switch {
		case hour <= 7:
			pct = 0
		case hour <= 11:
			pct = 20
		case hour <= 14:
			pct = 35
		case hour <= 17:
			pct = 30
		case hour <= 20:
			pct = 45
		case hour <= 22:
			pct = 35
		default:
			pct = 15
		}
		if bigNight && hour >= 18 && hour <= 22 {
			pct += 10
		}
		return pct
	}
}

// BaseCurve returns the 24 pre-jitter percentages for a category and day.
func BaseCurve(category Category, dayOfWeek int) [24]int {
	var curve [24]int
	weekend := IsWeekend(dayOfWeek)
	friday := IsFriday(dayOfWeek)
	for h := 0; h < 24; h++ {
		curve[h] = BaseCurvePercentage(category, h, weekend, friday)
	}
	return curve
}

// GenerateCurve builds the 24-point synthetic curve for a free-text venue
// type and a day-of-week (Sunday=0). Unrecognized types resolve to the
// generic curve; this never fails.
func (g *Generator) GenerateCurve(venueType string, dayOfWeek int) []models.BusyTime {
	category := ClassifyCategory(venueType)
	base := BaseCurve(category, dayOfWeek)

	points := make([]models.BusyTime, 24)
	for h := 0; h < 24; h++ {
		points[h] = models.BusyTime{
			Hour:        h,
			Percentage:  clampPercentage(base[h] + g.jitter()),
			IsPredicted: true,
		}
	}
	return points
}

// GenerateFullWeek builds curves for all seven days, keyed by weekday name.
func (g *Generator) GenerateFullWeek(venueType string) map[string][]models.BusyTime {
	week := make(map[string][]models.BusyTime, 7)
	for d := 0; d < 7; d++ {
		week[time.Weekday(d).String()] = g.GenerateCurve(venueType, d)
	}
	return week
}

func (g *Generator) jitter() int {
	if g.jitterRange <= 0 || g.rng == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(2*g.jitterRange+1) - g.jitterRange
}

func clampPercentage(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
