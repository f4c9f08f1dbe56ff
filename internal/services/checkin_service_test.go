package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type serviceFixture struct {
	service   CheckinServiceInterface
	journeys  *stubJourneyRepo
	checkins  *stubCheckinRepo
	streaks   *stubStreakRepo
	accountID uuid.UUID
	journeyID uuid.UUID
	exercise  uuid.UUID
	sleep     uuid.UUID
}

// Today is pinned to 2025-03-15. The journey has Exercise (weight 5) and
// Sleep (weight 3).
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		journeys:  newStubJourneyRepo(),
		checkins:  newStubCheckinRepo(),
		streaks:   newStubStreakRepo(),
		accountID: uuid.New(),
		journeyID: uuid.New(),
		exercise:  uuid.New(),
		sleep:     uuid.New(),
	}

	f.journeys.addMember(f.accountID, f.journeyID)
	f.journeys.dimensions[f.journeyID] = []dbm.Dimension{
		{BaseModel: dbm.BaseModel{ID: f.exercise}, JourneyID: f.journeyID, Name: "Exercise", Weight: 5},
		{BaseModel: dbm.BaseModel{ID: f.sleep}, JourneyID: f.journeyID, Name: "Sleep", Weight: 3},
	}

	validator := NewCheckinValidator(f.journeys, 7)
	validator.now = func() time.Time {
		return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	}

	tracker := NewStreakTracker(f.streaks, zap.NewNop())
	f.service = NewCheckinService(validator, f.checkins, tracker, f.journeys, zap.NewNop())
	return f
}

func (f *serviceFixture) submit(t *testing.T, date string, exerciseEffort, sleepEffort int, clientID *string) *serviceResult {
	t.Helper()
	result, err := f.service.SubmitCheckin(context.Background(), f.accountID, request_models.SubmitCheckinRequest{
		JourneyID:       f.journeyID.String(),
		Date:            date,
		ClientCheckinID: clientID,
		Details: []request_models.CheckinDetailRequest{
			{DimensionID: f.exercise.String(), EffortLevel: exerciseEffort},
			{DimensionID: f.sleep.String(), EffortLevel: sleepEffort},
		},
	})
	require.NoError(t, err)
	return &serviceResult{result.TotalScore, result.Streak.Current, result.Streak.Longest, result.CheckinID}
}

type serviceResult struct {
	total            float64
	current, longest int
	checkinID        string
}

func TestSubmitCheckinScoresAndStartsStreak(t *testing.T) {
	f := newServiceFixture(t)

	// Exercise 5 -> 5*3.0, Sleep 4 -> 3*2.0.
	r := f.submit(t, "2025-03-14", 5, 4, nil)
	assert.Equal(t, 21.0, r.total)
	assert.Equal(t, 1, r.current)
	assert.Equal(t, 1, r.longest)
	assert.Equal(t, 1, f.journeys.touched)
}

func TestSubmitCheckinNegativeTotalStillCounts(t *testing.T) {
	f := newServiceFixture(t)

	f.submit(t, "2025-03-14", 5, 4, nil)

	// Both dimensions skipped. The day scores negative but the streak
	// still advances: showing up to report a skip is a check-in.
	r := f.submit(t, "2025-03-15", 1, 1, nil)
	assert.Equal(t, -8.0, r.total)
	assert.Equal(t, 2, r.current)
	assert.Equal(t, 2, r.longest)
}

func TestSubmitCheckinSameDayReplacesDetails(t *testing.T) {
	f := newServiceFixture(t)

	f.submit(t, "2025-03-14", 5, 4, nil)
	first := f.submit(t, "2025-03-15", 1, 1, nil)

	// Resubmitting the same day replaces the details wholesale and
	// leaves the streak counters where they were.
	second := f.submit(t, "2025-03-15", 5, 5, nil)
	assert.Equal(t, 24.0, second.total)
	assert.Equal(t, 2, second.current)
	assert.Equal(t, 2, second.longest)
	assert.Equal(t, first.checkinID, second.checkinID, "same natural key must reuse the row")

	stored, err := f.checkins.ListByJourney(context.Background(), f.journeyID, f.accountID, nil, nil)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, c := range stored {
		assert.Len(t, c.Details, 2, "old details must not accumulate")
	}
}

func TestSubmitCheckinIdempotentReplay(t *testing.T) {
	f := newServiceFixture(t)
	clientID := "ckn-7f3a"

	first := f.submit(t, "2025-03-15", 5, 4, &clientID)
	assert.Equal(t, 21.0, first.total)
	assert.Equal(t, 1, first.current)
	writes := f.streaks.writeCalls

	// The retry carries the same client id with different efforts; the
	// stored row wins and the streak is not touched again.
	replay := f.submit(t, "2025-03-15", 1, 1, &clientID)
	assert.Equal(t, first.checkinID, replay.checkinID)
	assert.Equal(t, 21.0, replay.total)
	assert.Equal(t, 1, replay.current)
	assert.Equal(t, 1, replay.longest)
	assert.Equal(t, writes, f.streaks.writeCalls, "replay must not write the streak")
}

func TestSubmitCheckinRetriesStreakOnce(t *testing.T) {
	f := newServiceFixture(t)
	f.streaks.failWrites = 1

	r := f.submit(t, "2025-03-15", 3, 3, nil)
	assert.Equal(t, 1, r.current)
	assert.Equal(t, 2, f.streaks.writeCalls, "one failed write plus one successful retry")
}

func TestSubmitCheckinStreakFailureAfterRetry(t *testing.T) {
	f := newServiceFixture(t)
	f.streaks.failWrites = 2

	_, err := f.service.SubmitCheckin(context.Background(), f.accountID, request_models.SubmitCheckinRequest{
		JourneyID: f.journeyID.String(),
		Date:      "2025-03-15",
		Details: []request_models.CheckinDetailRequest{
			{DimensionID: f.exercise.String(), EffortLevel: 3},
			{DimensionID: f.sleep.String(), EffortLevel: 3},
		},
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSubmitCheckinValidationShortCircuits(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.SubmitCheckin(context.Background(), f.accountID, request_models.SubmitCheckinRequest{
		JourneyID: f.journeyID.String(),
		Date:      "2025-03-01",
		Details: []request_models.CheckinDetailRequest{
			{DimensionID: f.exercise.String(), EffortLevel: 3},
		},
	})
	assert.ErrorIs(t, err, utils.ErrDateOutOfWindow)
	assert.Empty(t, f.checkins.byNatural, "nothing may be stored on a rejected submission")
	assert.Zero(t, f.streaks.writeCalls)
}

func TestSubmitLocksAreSwept(t *testing.T) {
	var km keyedMutex

	held := km.lock("busy")

	for i := 0; i < submitLockSweepAbove; i++ {
		km.lock(strconv.Itoa(i)).Unlock()
	}

	km.mu.Lock()
	for _, l := range km.locks {
		l.lastUsed = time.Now().Add(-2 * submitLockIdleTTL)
	}
	km.mu.Unlock()

	// Crossing the threshold triggers the sweep before this key is added.
	km.lock("fresh").Unlock()

	km.mu.Lock()
	assert.Len(t, km.locks, 2)
	assert.Contains(t, km.locks, "busy", "a held lock must survive the sweep")
	assert.Contains(t, km.locks, "fresh")
	km.mu.Unlock()

	held.Unlock()
}

func TestListCheckinsFiltersByRange(t *testing.T) {
	f := newServiceFixture(t)

	f.submit(t, "2025-03-13", 3, 3, nil)
	f.submit(t, "2025-03-14", 3, 3, nil)
	f.submit(t, "2025-03-15", 3, 3, nil)

	out, err := f.service.ListCheckins(context.Background(), f.accountID, request_models.ListCheckinsQuery{
		JourneyID: f.journeyID.String(),
		StartDate: "2025-03-14",
		EndDate:   "2025-03-15",
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
