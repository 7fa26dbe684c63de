// Package snapshot persists periodic portfolio snapshots and serves them as
// historical baselines for change calculations.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
	"github.com/google/uuid"
)

// Compile-time interface check
var _ interfaces.SnapshotService = (*Service)(nil)

// Service implements SnapshotService over an injected blob store. History is
// serialized under a fixed per-user key, newest-first; a second key tracks
// the last snapshot date for the once-per-day convention.
type Service struct {
	blobs  interfaces.BlobStore
	logger *common.Logger
}

// NewService creates a new snapshot service.
func NewService(blobs interfaces.BlobStore, logger *common.Logger) *Service {
	return &Service{blobs: blobs, logger: logger}
}

func historyKey(userID string) string {
	return "snapshots/" + userID
}

func lastDateKey(userID string) string {
	return "snapshots/" + userID + "/last"
}

// ShouldSnapshot reports whether a new daily snapshot is due: true when no
// snapshot has been taken yet, or when the last one is from an earlier
// calendar day. Pure decision function; callers gate TakeSnapshot with it.
func ShouldSnapshot(now, lastSnapshotAt time.Time) bool {
	if lastSnapshotAt.IsZero() {
		return true
	}
	ny, nm, nd := now.Date()
	ly, lm, ld := lastSnapshotAt.Date()
	return ny != ly || nm != lm || nd != ld
}

// BuildSnapshot computes the aggregate snapshot record for a property list.
// Pure; persistence happens in TakeSnapshot.
func BuildSnapshot(properties []models.Property, at time.Time) models.PortfolioSnapshot {
	snap := models.PortfolioSnapshot{
		ID:              uuid.New().String(),
		Timestamp:       at,
		TotalProperties: len(properties),
	}

	occupied := 0
	for _, p := range properties {
		snap.PortfolioValue += p.EffectiveValue()
		snap.MonthlyIncome += p.Rent()
		if p.Status == models.StatusOccupied {
			occupied++
		}
		snap.Properties = append(snap.Properties, models.PropertySnapshot{
			PropertyID: p.ID,
			Value:      p.EffectiveValue(),
			Rent:       p.Rent(),
			Status:     p.Status,
		})
	}

	if len(properties) > 0 {
		snap.OccupancyRate = float64(occupied) / float64(len(properties)) * 100
	}

	return snap
}

// TakeSnapshot appends a new snapshot of the given properties to the user's
// history. Always appends; the daily gate is the caller's responsibility via
// ShouldSnapshot. History is kept newest-first and truncated to the
// retention cap.
func (s *Service) TakeSnapshot(ctx context.Context, properties []models.Property) (*models.PortfolioSnapshot, error) {
	userID := common.ResolveUserID(ctx)
	snap := BuildSnapshot(properties, time.Now())

	history := s.loadHistory(ctx, userID)
	history.Snapshots = append([]models.PortfolioSnapshot{snap}, history.Snapshots...)
	if len(history.Snapshots) > models.SnapshotRetention {
		history.Snapshots = history.Snapshots[:models.SnapshotRetention]
	}

	if err := s.saveHistory(ctx, userID, history); err != nil {
		return nil, err
	}

	if err := s.blobs.Set(ctx, lastDateKey(userID), []byte(snap.Timestamp.Format(time.RFC3339))); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to record last snapshot date")
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("properties", snap.TotalProperties).
		Float64("portfolio_value", snap.PortfolioValue).
		Int("history", len(history.Snapshots)).
		Msg("Snapshot taken")

	return &snap, nil
}

// GetSnapshotNearDate returns the snapshot whose timestamp is closest to the
// target by absolute distance, on either side. Returns nil when the history
// is empty. Linear scan; no interpolation.
func (s *Service) GetSnapshotNearDate(ctx context.Context, target time.Time) (*models.PortfolioSnapshot, error) {
	userID := common.ResolveUserID(ctx)
	history := s.loadHistory(ctx, userID)
	if len(history.Snapshots) == 0 {
		return nil, nil
	}

	best := 0
	bestDist := absDuration(history.Snapshots[0].Timestamp.Sub(target))
	for i := 1; i < len(history.Snapshots); i++ {
		d := absDuration(history.Snapshots[i].Timestamp.Sub(target))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	snap := history.Snapshots[best]
	return &snap, nil
}

// History returns all stored snapshots for the user, newest-first.
func (s *Service) History(ctx context.Context) ([]models.PortfolioSnapshot, error) {
	userID := common.ResolveUserID(ctx)
	history := s.loadHistory(ctx, userID)
	return history.Snapshots, nil
}

// LastSnapshotAt returns the timestamp of the most recent snapshot, or the
// zero time when none has been taken.
func (s *Service) LastSnapshotAt(ctx context.Context) (time.Time, error) {
	userID := common.ResolveUserID(ctx)
	data, err := s.blobs.Get(ctx, lastDateKey(userID))
	if err != nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

// loadHistory reads the serialized history. Storage or decode failures are
// logged and degrade to an empty history so metrics fall back to zero-state
// rather than failing the view.
func (s *Service) loadHistory(ctx context.Context, userID string) *models.SnapshotHistory {
	history := &models.SnapshotHistory{}

	data, err := s.blobs.Get(ctx, historyKey(userID))
	if err != nil {
		return history
	}
	if err := json.Unmarshal(data, history); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("Corrupt snapshot history, starting fresh")
		return &models.SnapshotHistory{}
	}
	return history
}

func (s *Service) saveHistory(ctx context.Context, userID string, history *models.SnapshotHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot history: %w", err)
	}
	if err := s.blobs.Set(ctx, historyKey(userID), data); err != nil {
		return fmt.Errorf("failed to save snapshot history: %w", err)
	}
	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
