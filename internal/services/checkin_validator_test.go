package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type validatorFixture struct {
	validator *CheckinValidator
	accountID uuid.UUID
	journeyID uuid.UUID
	exercise  uuid.UUID
	sleep     uuid.UUID
}

// The fixture pins today to 2025-03-15 so the 7-day window is exactly
// 2025-03-09 through 2025-03-15.
func newValidatorFixture(t *testing.T) *validatorFixture {
	t.Helper()

	f := &validatorFixture{
		accountID: uuid.New(),
		journeyID: uuid.New(),
		exercise:  uuid.New(),
		sleep:     uuid.New(),
	}

	repo := newStubJourneyRepo()
	repo.addMember(f.accountID, f.journeyID)
	repo.dimensions[f.journeyID] = []dbm.Dimension{
		{BaseModel: dbm.BaseModel{ID: f.exercise}, JourneyID: f.journeyID, Name: "Exercise", Weight: 5},
		{BaseModel: dbm.BaseModel{ID: f.sleep}, JourneyID: f.journeyID, Name: "Sleep", Weight: 3},
	}

	f.validator = NewCheckinValidator(repo, 7)
	f.validator.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func (f *validatorFixture) request(date string) request_models.SubmitCheckinRequest {
	return request_models.SubmitCheckinRequest{
		JourneyID: f.journeyID.String(),
		Date:      date,
		Details: []request_models.CheckinDetailRequest{
			{DimensionID: f.exercise.String(), EffortLevel: 4},
			{DimensionID: f.sleep.String(), EffortLevel: 3},
		},
	}
}

func TestValidateAcceptsWholeWindow(t *testing.T) {
	f := newValidatorFixture(t)

	for _, date := range []string{"2025-03-09", "2025-03-12", "2025-03-15"} {
		validated, err := f.validator.Validate(context.Background(), f.accountID, f.request(date))
		require.NoError(t, err, "date %s", date)
		assert.Equal(t, f.journeyID, validated.JourneyID)
		assert.Equal(t, date, utils.FormatDate(validated.Date))
	}
}

func TestValidateRejectsOutsideWindow(t *testing.T) {
	f := newValidatorFixture(t)

	// One day before the window opens and one day into the future.
	for _, date := range []string{"2025-03-08", "2025-03-16", "2024-03-15"} {
		_, err := f.validator.Validate(context.Background(), f.accountID, f.request(date))
		assert.ErrorIs(t, err, utils.ErrDateOutOfWindow, "date %s", date)
	}
}

func TestValidateWindowFollowsConfiguredDays(t *testing.T) {
	f := newValidatorFixture(t)
	f.validator.windowDays = 3

	_, err := f.validator.Validate(context.Background(), f.accountID, f.request("2025-03-13"))
	assert.NoError(t, err)

	_, err = f.validator.Validate(context.Background(), f.accountID, f.request("2025-03-12"))
	assert.ErrorIs(t, err, utils.ErrDateOutOfWindow)
}

func TestValidateMissingFields(t *testing.T) {
	f := newValidatorFixture(t)
	ctx := context.Background()

	req := f.request("2025-03-15")
	req.JourneyID = ""
	_, err := f.validator.Validate(ctx, f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrMissingField)

	req = f.request("2025-03-15")
	req.Date = ""
	_, err = f.validator.Validate(ctx, f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrMissingField)

	req = f.request("2025-03-15")
	req.Details = nil
	_, err = f.validator.Validate(ctx, f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrMissingField)

	req = f.request("2025-03-15")
	req.Details[0].DimensionID = ""
	_, err = f.validator.Validate(ctx, f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrMissingField)
}

func TestValidateBadDateFormat(t *testing.T) {
	f := newValidatorFixture(t)

	for _, date := range []string{"15-03-2025", "2025/03/15", "today"} {
		_, err := f.validator.Validate(context.Background(), f.accountID, f.request(date))
		assert.ErrorIs(t, err, utils.ErrBadDateFormat, "date %s", date)
	}
}

func TestValidateEffortBounds(t *testing.T) {
	f := newValidatorFixture(t)
	ctx := context.Background()

	for _, level := range []int{1, 2, 3, 4, 5} {
		req := f.request("2025-03-15")
		req.Details[0].EffortLevel = level
		_, err := f.validator.Validate(ctx, f.accountID, req)
		assert.NoError(t, err, "level %d", level)
	}

	for _, level := range []int{-1, 6, 42} {
		req := f.request("2025-03-15")
		req.Details[0].EffortLevel = level
		_, err := f.validator.Validate(ctx, f.accountID, req)
		assert.ErrorIs(t, err, utils.ErrInvalidEffort, "level %d", level)
	}
}

func TestValidateRejectsNonMember(t *testing.T) {
	f := newValidatorFixture(t)

	outsider := uuid.New()
	_, err := f.validator.Validate(context.Background(), outsider, f.request("2025-03-15"))
	assert.ErrorIs(t, err, utils.ErrNotAMember)
}

func TestValidateRejectsForeignDimension(t *testing.T) {
	f := newValidatorFixture(t)

	req := f.request("2025-03-15")
	req.Details[1].DimensionID = uuid.New().String()
	_, err := f.validator.Validate(context.Background(), f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrUnknownDimension)
}

func TestValidateRejectsDuplicateDimension(t *testing.T) {
	f := newValidatorFixture(t)

	req := f.request("2025-03-15")
	req.Details[1].DimensionID = req.Details[0].DimensionID
	_, err := f.validator.Validate(context.Background(), f.accountID, req)
	assert.ErrorIs(t, err, utils.ErrUnknownDimension)
}

func TestValidateResolvesWeights(t *testing.T) {
	f := newValidatorFixture(t)

	validated, err := f.validator.Validate(context.Background(), f.accountID, f.request("2025-03-15"))
	require.NoError(t, err)
	require.Len(t, validated.Details, 2)

	assert.Equal(t, "Exercise", validated.Details[0].DimensionName)
	assert.Equal(t, 5, validated.Details[0].Weight)
	assert.Equal(t, 4, validated.Details[0].EffortLevel)
	assert.Equal(t, "Sleep", validated.Details[1].DimensionName)
	assert.Equal(t, 3, validated.Details[1].Weight)
}
