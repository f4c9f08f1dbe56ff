package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type analyticsFixture struct {
	service   AnalyticsServiceInterface
	analytics *stubAnalyticsRepo
	accountID uuid.UUID
	journeyID uuid.UUID
	exercise  uuid.UUID
	sleep     uuid.UUID
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	f := &analyticsFixture{
		analytics: &stubAnalyticsRepo{},
		accountID: uuid.New(),
		journeyID: uuid.New(),
		exercise:  uuid.New(),
		sleep:     uuid.New(),
	}

	journeys := newStubJourneyRepo()
	journeys.addMember(f.accountID, f.journeyID)
	journeys.dimensions[f.journeyID] = []dbm.Dimension{
		{BaseModel: dbm.BaseModel{ID: f.exercise}, JourneyID: f.journeyID, Name: "Exercise", Weight: 5},
		{BaseModel: dbm.BaseModel{ID: f.sleep}, JourneyID: f.journeyID, Name: "Sleep", Weight: 3},
	}

	f.service = NewAnalyticsService(f.analytics, journeys)
	return f
}

func TestStackedBarGroupsSegmentsByDay(t *testing.T) {
	f := newAnalyticsFixture(t)

	f.analytics.dailyDimensionScores = []repositories.DailyDimensionScore{
		{Date: day("2025-03-14"), DimensionID: f.exercise, Name: "Exercise", Score: 15.0, TotalScore: 21.0},
		{Date: day("2025-03-14"), DimensionID: f.sleep, Name: "Sleep", Score: 6.0, TotalScore: 21.0},
		{Date: day("2025-03-15"), DimensionID: f.exercise, Name: "Exercise", Score: -5.0, TotalScore: -5.0},
	}

	resp, err := f.service.StackedBarData(context.Background(), f.accountID, f.journeyID,
		"2025-03-14", "2025-03-15")
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2025-03-14", resp.Days[0].Date)
	assert.Equal(t, 21.0, resp.Days[0].TotalScore)
	require.Len(t, resp.Days[0].Segments, 2)
	assert.Equal(t, "Exercise", resp.Days[0].Segments[0].Dimension)
	assert.Equal(t, 15.0, resp.Days[0].Segments[0].Score)
	assert.Equal(t, "Sleep", resp.Days[0].Segments[1].Dimension)
	assert.Equal(t, 6.0, resp.Days[0].Segments[1].Score)

	// Day two only scored one dimension; it gets a single segment, not
	// a zero filler.
	assert.Equal(t, "2025-03-15", resp.Days[1].Date)
	assert.Equal(t, -5.0, resp.Days[1].TotalScore)
	require.Len(t, resp.Days[1].Segments, 1)

	assert.Equal(t, []string{"Exercise", "Sleep"}, resp.Dimensions)
	assert.Equal(t, "2025-03-14", resp.Period.Start)
	assert.Equal(t, "2025-03-15", resp.Period.End)
}

func TestStackedBarEmptyPeriod(t *testing.T) {
	f := newAnalyticsFixture(t)

	resp, err := f.service.StackedBarData(context.Background(), f.accountID, f.journeyID,
		"2025-03-01", "2025-03-07")
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.Equal(t, []string{"Exercise", "Sleep"}, resp.Dimensions)
}

func TestStackedBarRequiresMembership(t *testing.T) {
	f := newAnalyticsFixture(t)

	_, err := f.service.StackedBarData(context.Background(), uuid.New(), f.journeyID, "", "")
	assert.ErrorIs(t, err, utils.ErrNotAMember)
}

func TestStackedBarRejectsBadDates(t *testing.T) {
	f := newAnalyticsFixture(t)

	_, err := f.service.StackedBarData(context.Background(), f.accountID, f.journeyID,
		"14-03-2025", "")
	assert.ErrorIs(t, err, utils.ErrBadDateFormat)
}
