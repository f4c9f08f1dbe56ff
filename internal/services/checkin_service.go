package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/response_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type CheckinServiceInterface interface {
	SubmitCheckin(ctx context.Context, accountID uuid.UUID, req request_models.SubmitCheckinRequest) (*response_models.CheckinResult, error)
	ListCheckins(ctx context.Context, accountID uuid.UUID, q request_models.ListCheckinsQuery) ([]response_models.CheckinResponse, error)
}

const (
	submitLockIdleTTL    = 5 * time.Minute
	submitLockSweepAbove = 1024
)

type submitLock struct {
	mu       sync.Mutex
	lastUsed time.Time
}

// keyedMutex serializes submissions per (account, journey) so the
// upsert-then-streak pair behaves as one unit under concurrent requests
// for the same natural key. Once the map outgrows submitLockSweepAbove,
// entries idle past submitLockIdleTTL are swept, the same bound the rate
// limiter keeps on its buckets.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*submitLock
}

func (k *keyedMutex) lock(key string) *sync.Mutex {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*submitLock)
	}
	now := time.Now()
	if len(k.locks) > submitLockSweepAbove {
		k.sweep(now)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &submitLock{}
		k.locks[key] = l
	}
	l.lastUsed = now
	k.mu.Unlock()
	l.mu.Lock()
	return &l.mu
}

// sweep runs under k.mu. TryLock guards against freeing a mutex a
// request still holds.
func (k *keyedMutex) sweep(now time.Time) {
	for key, l := range k.locks {
		if now.Sub(l.lastUsed) > submitLockIdleTTL && l.mu.TryLock() {
			l.mu.Unlock()
			delete(k.locks, key)
		}
	}
}

type CheckinService struct {
	validator *CheckinValidator
	checkins  repositories.CheckinRepository
	tracker   *StreakTracker
	journeys  repositories.JourneyRepository
	logger    *zap.Logger
	submits   keyedMutex
}

func NewCheckinService(
	validator *CheckinValidator,
	checkins repositories.CheckinRepository,
	tracker *StreakTracker,
	journeys repositories.JourneyRepository,
	logger *zap.Logger,
) CheckinServiceInterface {
	return &CheckinService{
		validator: validator,
		checkins:  checkins,
		tracker:   tracker,
		journeys:  journeys,
		logger:    logger,
	}
}

// SubmitCheckin runs the full pipeline: validate, score, upsert, then
// streak update. On an idempotent replay the stored row comes back
// unchanged and the streak step is skipped entirely, otherwise a replayed
// retry would double-count the increment.
func (s *CheckinService) SubmitCheckin(ctx context.Context, accountID uuid.UUID, req request_models.SubmitCheckinRequest) (*response_models.CheckinResult, error) {
	validated, err := s.validator.Validate(ctx, accountID, req)
	if err != nil {
		return nil, err
	}

	details := make([]dbm.CheckinDetail, 0, len(validated.Details))
	scores := make([]float64, 0, len(validated.Details))
	for _, d := range validated.Details {
		score, err := DetailScore(d.EffortLevel, d.Weight)
		if err != nil {
			// Validation guarantees 1..5; reaching here means the
			// two layers disagree and the request must not be saved.
			s.logger.Error("scoring rejected a validated detail",
				zap.String("dimension_id", d.DimensionID.String()),
				zap.Int("effort_level", d.EffortLevel))
			return nil, utils.ErrDatabaseError
		}
		details = append(details, dbm.CheckinDetail{
			DimensionID: d.DimensionID,
			EffortLevel: d.EffortLevel,
			Score:       score,
		})
		scores = append(scores, score)
	}
	totalScore := TotalScore(scores)

	lock := s.submits.lock(accountID.String() + ":" + validated.JourneyID.String())
	defer lock.Unlock()

	checkin, outcome, err := s.checkins.Upsert(ctx, repositories.UpsertCheckinInput{
		AccountID:       accountID,
		JourneyID:       validated.JourneyID,
		Date:            validated.Date,
		TotalScore:      totalScore,
		ClientCheckinID: validated.ClientCheckinID,
		Details:         details,
	})
	if err != nil {
		s.logger.Error("check-in upsert failed", zap.Error(err),
			zap.String("account_id", accountID.String()),
			zap.String("journey_id", validated.JourneyID.String()))
		return nil, utils.ErrDatabaseError
	}

	if outcome == repositories.OutcomeReplayed {
		streak, err := s.tracker.Current(ctx, accountID, checkin.JourneyID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		s.logger.Info("idempotent check-in replay",
			zap.Stringp("client_checkin_id", validated.ClientCheckinID))
		return s.assembleResult(checkin, validated.Details, streak), nil
	}

	// The check-in is committed; a failed streak write must not leave it
	// silently stale, so the streak step alone is retried once.
	streak, err := s.tracker.RecordCheckin(ctx, accountID, validated.JourneyID, validated.Date)
	if err != nil {
		s.logger.Warn("streak update failed, retrying", zap.Error(err))
		streak, err = s.tracker.RecordCheckin(ctx, accountID, validated.JourneyID, validated.Date)
		if err != nil {
			s.logger.Error("streak update failed after retry", zap.Error(err),
				zap.String("account_id", accountID.String()),
				zap.String("journey_id", validated.JourneyID.String()))
			return nil, utils.ErrDatabaseError
		}
	}

	if err := s.journeys.TouchMemberCheckin(ctx, accountID, validated.JourneyID, time.Now()); err != nil {
		// Display metadata only, not worth failing the submission.
		s.logger.Warn("failed to touch member last check-in", zap.Error(err))
	}

	s.logger.Info("check-in saved",
		zap.String("account_id", accountID.String()),
		zap.String("journey_id", validated.JourneyID.String()),
		zap.String("date", utils.FormatDate(validated.Date)),
		zap.Float64("total_score", totalScore))

	return s.assembleResult(checkin, validated.Details, streak), nil
}

func (s *CheckinService) assembleResult(checkin *dbm.Checkin, validated []ValidatedDetail, streak *dbm.Streak) *response_models.CheckinResult {
	names := make(map[uuid.UUID]string, len(validated))
	for _, d := range validated {
		names[d.DimensionID] = d.DimensionName
	}

	details := make([]response_models.CheckinDetailResult, 0, len(checkin.Details))
	for _, d := range checkin.Details {
		details = append(details, response_models.CheckinDetailResult{
			DimensionID:   d.DimensionID.String(),
			DimensionName: names[d.DimensionID],
			EffortLevel:   d.EffortLevel,
			Score:         d.Score,
		})
	}

	result := &response_models.CheckinResult{
		CheckinID:  checkin.ID.String(),
		JourneyID:  checkin.JourneyID.String(),
		Date:       utils.FormatDate(checkin.Date),
		TotalScore: checkin.TotalScore,
		Details:    details,
	}
	if streak != nil {
		result.Streak = response_models.StreakInfo{
			Current: streak.CurrentStreak,
			Longest: streak.LongestStreak,
		}
	}
	return result
}

func (s *CheckinService) ListCheckins(ctx context.Context, accountID uuid.UUID, q request_models.ListCheckinsQuery) ([]response_models.CheckinResponse, error) {
	journeyID, err := uuid.Parse(q.JourneyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var from, to *time.Time
	if q.StartDate != "" {
		d, err := utils.ParseDate(q.StartDate)
		if err != nil {
			return nil, utils.ErrBadDateFormat
		}
		from = &d
	}
	if q.EndDate != "" {
		d, err := utils.ParseDate(q.EndDate)
		if err != nil {
			return nil, utils.ErrBadDateFormat
		}
		to = &d
	}

	checkins, err := s.checkins.ListByJourney(ctx, journeyID, accountID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CheckinResponse, 0, len(checkins))
	for _, c := range checkins {
		details := make([]response_models.CheckinDetailResult, 0, len(c.Details))
		for _, d := range c.Details {
			details = append(details, response_models.CheckinDetailResult{
				DimensionID:   d.DimensionID.String(),
				DimensionName: d.Dimension.Name,
				EffortLevel:   d.EffortLevel,
				Score:         d.Score,
			})
		}
		out = append(out, response_models.CheckinResponse{
			ID:         c.ID.String(),
			JourneyID:  c.JourneyID.String(),
			Date:       utils.FormatDate(c.Date),
			TotalScore: c.TotalScore,
			Details:    details,
		})
	}
	return out, nil
}
