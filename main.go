package main

import (
	"log"
	"path/filepath"

	"buzz-server/config"
	"buzz-server/di"
	"buzz-server/models/venue"
	"buzz-server/util"
)

// plotWeekForecasts renders each venue's weekly curve to HTML when
// PLOT_OUTPUT_DIR is set. Handy for eyeballing the synthetic curves.
func plotWeekForecasts(container *di.Container, venues []venue.Venue) {
	outDir := config.GetEnv("PLOT_OUTPUT_DIR", "")
	if outDir == "" {
		return
	}
	for _, v := range venues {
		week := container.Generator.GenerateFullWeek(v.VenueType)
		outPath := filepath.Join(outDir, v.VenueID+"_week.html")
		if err := util.PlotWeekCurve(v.VenueName, week, outPath); err != nil {
			log.Printf("[MAIN] Failed to plot week curve for %s: %v", v.VenueID, err)
		}
	}
}

// backfillSnapshots imports historical snapshots from a JSON fixture when
// SNAPSHOT_BACKFILL_FILE is set, so a fresh deployment starts with real data
// instead of waiting for seeding.
func backfillSnapshots(container *di.Container) {
	path := config.GetEnv("SNAPSHOT_BACKFILL_FILE", "")
	if path == "" {
		return
	}
	snapshots, err := util.ReadSnapshotsFromJSON(path)
	if err != nil {
		log.Printf("[MAIN] Failed to read snapshot backfill file %s: %v", path, err)
		return
	}
	for _, s := range snapshots {
		if err := container.RedisSnapshotDao.AppendSnapshot(s); err != nil {
			log.Printf("[MAIN] Failed to backfill snapshot for %s: %v", s.VenueID, err)
		}
	}
	log.Printf("[MAIN] Backfilled %d snapshots from %s", len(snapshots), path)
}

func main() {
	container := di.NewContainer(config.GetEnv("APP_ENV", "prod"))

	// Load the static venue catalog into the geo index.
	venuesPath := config.GetResourcePath(config.STATIC_VENUES_RESOURCE)
	venues, err := util.ReadVenuesFromJSON(venuesPath)
	if err != nil {
		log.Printf("[MAIN] No static venue catalog loaded (%v), starting with an empty index", err)
	} else {
		for _, v := range venues {
			if err := container.RedisVenueDao.UpsertVenue(v); err != nil {
				log.Printf("[MAIN] Failed to upsert venue %s: %v", v.VenueID, err)
			}
		}
		log.Printf("[MAIN] Loaded %d venues from %s", len(venues), venuesPath)
		plotWeekForecasts(container, venues)
	}

	backfillSnapshots(container)

	// Warm caches and seed sparse snapshot logs, then keep refreshing.
	if err := container.CurveRefresherService.RefreshAll(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}
	container.CurveRefresherService.StartPeriodicJob(config.RefresherInterval())

	container.BuzzHttpServer.Start()
}
