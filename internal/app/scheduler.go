package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/services/snapshot"
)

// snapshotScheduler runs the daily snapshot job on a cron schedule.
type snapshotScheduler struct {
	cron   *cron.Cron
	logger *common.Logger
}

// StartSnapshotScheduler launches the background snapshot job if enabled in
// config. Safe to call once during startup.
func (a *App) StartSnapshotScheduler() error {
	if !a.Config.Snapshot.Enabled {
		a.Logger.Info().Msg("Snapshot scheduler disabled")
		return nil
	}

	c := cron.New()
	schedule := a.Config.Snapshot.GetSchedule()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		runSnapshotJob(ctx, a.Storage, a.SnapshotService, a.Logger)
	})
	if err != nil {
		return err
	}

	c.Start()
	a.scheduler = &snapshotScheduler{cron: c, logger: a.Logger}

	a.Logger.Info().Str("schedule", schedule).Msg("Snapshot scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *snapshotScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Snapshot scheduler stopped")
}

// runSnapshotJob captures one snapshot per known user, skipping users whose
// latest snapshot is from the current calendar day.
func runSnapshotJob(ctx context.Context, store interfaces.StorageManager, snapshots interfaces.SnapshotService, logger *common.Logger) {
	userIDs, err := store.UserStore().ListUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Snapshot job failed to list users")
		return
	}
	if len(userIDs) == 0 {
		// Single-tenant install with no registered accounts.
		userIDs = []string{"default"}
	}

	now := time.Now()
	for _, userID := range userIDs {
		uc := &common.UserContext{UserID: userID}
		userCtx := common.WithUserContext(ctx, uc)

		last, err := snapshots.LastSnapshotAt(userCtx)
		if err == nil && !snapshot.ShouldSnapshot(now, last) {
			continue
		}

		properties, err := store.PropertyStore().ListProperties(userCtx, userID)
		if err != nil {
			logger.Error().Err(err).Str("user_id", userID).Msg("Snapshot job failed to list properties")
			continue
		}

		if _, err := snapshots.TakeSnapshot(userCtx, properties); err != nil {
			logger.Error().Err(err).Str("user_id", userID).Msg("Snapshot job failed to take snapshot")
			continue
		}

		logger.Info().Str("user_id", userID).Int("properties", len(properties)).Msg("Daily snapshot captured")
	}
}
