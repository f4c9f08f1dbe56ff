package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

// StreakTracker owns the streak rows; nothing else writes them. It is
// not idempotent on its own: the check-in service must call RecordCheckin
// exactly once per accepted write and never on an idempotent replay.
type StreakTracker struct {
	streaks repositories.StreakRepository
	logger  *zap.Logger
}

func NewStreakTracker(streaks repositories.StreakRepository, logger *zap.Logger) *StreakTracker {
	return &StreakTracker{streaks: streaks, logger: logger}
}

// RecordCheckin advances the state machine for one durably recorded
// check-in and returns the resulting streak:
//
//	no row          -> create with current=1, longest=1
//	same day        -> unchanged
//	consecutive day -> current+1, longest raised to match if passed
//	gap or backdate -> current resets to 1, longest untouched
func (t *StreakTracker) RecordCheckin(ctx context.Context, accountID, journeyID uuid.UUID, checkinDate time.Time) (*dbm.Streak, error) {
	streak, err := t.streaks.Get(ctx, accountID, journeyID)
	if err != nil {
		return nil, err
	}

	if streak == nil {
		streak = &dbm.Streak{
			AccountID:       accountID,
			JourneyID:       journeyID,
			CurrentStreak:   1,
			LongestStreak:   1,
			LastCheckinDate: checkinDate,
		}
		if err := t.streaks.Create(ctx, streak); err != nil {
			return nil, err
		}
		t.logger.Info("streak started",
			zap.String("account_id", accountID.String()),
			zap.String("journey_id", journeyID.String()))
		return streak, nil
	}

	gap := utils.DaysBetween(checkinDate, streak.LastCheckinDate)
	switch {
	case gap == 0:
		// Same-day resubmission, counters stay put.
		return streak, nil

	case gap == 1:
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastCheckinDate = checkinDate
		if err := t.streaks.Update(ctx, streak); err != nil {
			return nil, err
		}
		t.logger.Info("streak advanced",
			zap.String("account_id", accountID.String()),
			zap.String("journey_id", journeyID.String()),
			zap.Int("current", streak.CurrentStreak))
		return streak, nil

	default:
		// A day was missed, or a back-dated check-in arrived out of
		// order. Longest already reflects the historical maximum.
		streak.CurrentStreak = 1
		streak.LastCheckinDate = checkinDate
		if err := t.streaks.Update(ctx, streak); err != nil {
			return nil, err
		}
		t.logger.Info("streak reset",
			zap.String("account_id", accountID.String()),
			zap.String("journey_id", journeyID.String()),
			zap.Int("gap_days", gap))
		return streak, nil
	}
}

// Current reads the streak without mutating it, for replay responses and
// journey stats.
func (t *StreakTracker) Current(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.Streak, error) {
	return t.streaks.Get(ctx, accountID, journeyID)
}
