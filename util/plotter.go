package util

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"buzz-server/models"
)

// PlotWeekCurve renders a venue's full-week occupancy curves to an HTML line
// chart, one series per weekday.
func PlotWeekCurve(venueName string, week map[string][]models.BusyTime, outPath string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Occupancy Forecast - " + venueName,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: venueName,
		}),
	)

	hours := make([]string, 24)
	for h := 0; h < 24; h++ {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}
	line.SetXAxis(hours)

	// Keep weekday order stable, Sunday first.
	for d := 0; d < 7; d++ {
		day := time.Weekday(d).String()
		curve, ok := week[day]
		if !ok {
			continue
		}
		points := make([]opts.LineData, len(curve))
		for i, p := range curve {
			points[i] = opts.LineData{Value: p.Percentage}
		}
		line.AddSeries(day, points)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
