package busyness

import (
	"time"

	"buzz-server/models"
)

// bucket accumulates (sum, count, max) for one hour or day slot.
type bucket struct {
	sum   int
	count int
	max   int
}

func (b *bucket) add(percentage int) {
	b.sum += percentage
	b.count++
	if percentage > b.max {
		b.max = percentage
	}
}

func (b *bucket) mean() float64 {
	if b.count == 0 {
		return 0
	}
	return float64(b.sum) / float64(b.count)
}

// Aggregate reduces a window of snapshots into hourly and daily busy-ness
// aggregates plus a scalar summary.
//
// The reduction is a single commutative pass over the input: the result does
// not depend on snapshot order, so out-of-order or concurrently ingested
// windows aggregate safely. An empty window produces all-zero aggregates,
// never an error.
func Aggregate(snapshots []models.OccupancySnapshot) models.BusynessSummary {
	var hours [24]bucket
	var days [7]bucket
	var grid [7][24]bucket

	totalOccupancy := 0
	pctSum := 0

	var latestTS time.Time
	latestPct := 0

	for _, s := range snapshots {
		hour := s.Timestamp.Hour()
		day := int(s.Timestamp.Weekday())

		hours[hour].add(s.OccupancyPercentage)
		days[day].add(s.OccupancyPercentage)
		grid[day][hour].add(s.OccupancyPercentage)

		totalOccupancy += s.OccupancyCount
		pctSum += s.OccupancyPercentage

		if latestTS.IsZero() || s.Timestamp.After(latestTS) {
			latestTS = s.Timestamp
			latestPct = s.OccupancyPercentage
		}
	}

	hourly := make([]models.HourlyAggregate, 24)
	globalPeakHour := 0
	globalPeakMean := 0.0
	for h := 0; h < 24; h++ {
		mean := hours[h].mean()
		hourly[h] = models.HourlyAggregate{
			Hour:             h,
			AverageOccupancy: mean,
			PeakOccupancy:    hours[h].max,
		}
		if mean > globalPeakMean {
			globalPeakMean = mean
			globalPeakHour = h
		}
	}

	daily := make([]models.DailyAggregate, 7)
	for d := 0; d < 7; d++ {
		peakHour := 0
		peakMean := 0.0
		for h := 0; h < 24; h++ {
			if mean := grid[d][h].mean(); mean > peakMean {
				peakMean = mean
				peakHour = h
			}
		}
		daily[d] = models.DailyAggregate{
			DayOfWeek:        d,
			AverageOccupancy: days[d].mean(),
			PeakHour:         peakHour,
		}
	}

	averageOccupancy := 0.0
	if len(snapshots) > 0 {
		averageOccupancy = float64(pctSum) / float64(len(snapshots))
	}

	return models.BusynessSummary{
		HourlyAggregates: hourly,
		DailyAggregates:  daily,
		PeakHour:         globalPeakHour,
		TotalOccupancy:   totalOccupancy,
		AverageOccupancy: averageOccupancy,
		CurrentOccupancy: latestPct,
		CurrentStatus:    ClassifyStatus(latestPct, len(snapshots) > 0),
	}
}
