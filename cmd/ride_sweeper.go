package main

import (
	"context"
	"log"
	"time"

	"waataxi/internal/services"
)

const rideSweeperRunTimeout = 30 * time.Second

// startRideSweeper times out stale pending rides on a fixed interval. Runs
// once at startup, then on every tick until the context is cancelled.
func startRideSweeper(ctx context.Context, svc *services.RideService, interval, pendingTimeout time.Duration, infoLog, errorLog *log.Logger) {
	if svc == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, rideSweeperRunTimeout)
			defer cancel()

			swept, err := svc.SweepExpired(runCtx, time.Now(), pendingTimeout)
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("ride sweeper: %v", err)
				}
			}
			if swept > 0 && infoLog != nil {
				infoLog.Printf("ride sweeper: timed out %d pending rides", swept)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
