package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/vignesh-ravichandran/Crimson/internal/models/response_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

// Max unit score an effort level can reach; radar charts scale each
// dimension against weight times this.
const maxUnitScore = 3.0

type AnalyticsServiceInterface interface {
	RadarData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.RadarResponse, error)
	LineData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.LineResponse, error)
	StackedBarData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.StackedBarResponse, error)
	HeatmapData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.HeatmapResponse, error)
}

type AnalyticsService struct {
	analytics repositories.AnalyticsRepository
	journeys  repositories.JourneyRepository
}

func NewAnalyticsService(analytics repositories.AnalyticsRepository, journeys repositories.JourneyRepository) AnalyticsServiceInterface {
	return &AnalyticsService{analytics: analytics, journeys: journeys}
}

// parsePeriod defaults to the trailing 30 days when bounds are omitted.
func parsePeriod(start, end string) (time.Time, time.Time, error) {
	to := utils.Midnight(time.Now())
	from := to.AddDate(0, 0, -30)

	if start != "" {
		d, err := utils.ParseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, utils.ErrBadDateFormat
		}
		from = utils.Midnight(d)
	}
	if end != "" {
		d, err := utils.ParseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, utils.ErrBadDateFormat
		}
		to = utils.Midnight(d)
	}
	return from, to, nil
}

func (s *AnalyticsService) requireMember(ctx context.Context, accountID, journeyID uuid.UUID) error {
	isMember, err := s.journeys.IsMember(ctx, accountID, journeyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !isMember {
		return utils.ErrNotAMember
	}
	return nil
}

func (s *AnalyticsService) RadarData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.RadarResponse, error) {
	from, to, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, accountID, journeyID); err != nil {
		return nil, err
	}

	rows, err := s.analytics.DimensionAverages(ctx, journeyID, accountID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dimensions := make([]response_models.RadarDimension, 0, len(rows))
	for _, row := range rows {
		dimensions = append(dimensions, response_models.RadarDimension{
			DimensionID:  row.DimensionID.String(),
			Dimension:    row.Name,
			AvgScore:     math.Round(row.AvgScore*10) / 10,
			MaxScore:     float64(row.Weight) * maxUnitScore,
			CheckinCount: row.CheckinCount,
		})
	}

	return &response_models.RadarResponse{
		Dimensions: dimensions,
		Period:     periodOf(from, to),
	}, nil
}

func (s *AnalyticsService) LineData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.LineResponse, error) {
	from, to, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, accountID, journeyID); err != nil {
		return nil, err
	}

	rows, err := s.analytics.DailyTotals(ctx, journeyID, accountID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	points := make([]response_models.LinePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, response_models.LinePoint{
			Date:       utils.FormatDate(row.Date),
			TotalScore: row.TotalScore,
		})
	}

	return &response_models.LineResponse{
		Points: points,
		Period: periodOf(from, to),
	}, nil
}

// StackedBarData shapes one bar per check-in day, broken down into a
// segment per scored dimension. Days without a check-in get no bar.
func (s *AnalyticsService) StackedBarData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.StackedBarResponse, error) {
	from, to, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, accountID, journeyID); err != nil {
		return nil, err
	}

	rows, err := s.analytics.DailyDimensionScores(ctx, journeyID, accountID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Rows arrive ordered by date then display order, so grouping is a
	// single pass.
	days := make([]response_models.StackedBarDay, 0)
	for _, row := range rows {
		date := utils.FormatDate(row.Date)
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, response_models.StackedBarDay{
				Date:       date,
				TotalScore: row.TotalScore,
			})
		}
		last := &days[len(days)-1]
		last.Segments = append(last.Segments, response_models.StackedBarSegment{
			DimensionID: row.DimensionID.String(),
			Dimension:   row.Name,
			Score:       row.Score,
		})
	}

	dims, err := s.journeys.GetDimensions(ctx, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		names = append(names, d.Name)
	}

	return &response_models.StackedBarResponse{
		Days:       days,
		Dimensions: names,
		Period:     periodOf(from, to),
	}, nil
}

func (s *AnalyticsService) HeatmapData(ctx context.Context, accountID, journeyID uuid.UUID, start, end string) (*response_models.HeatmapResponse, error) {
	from, to, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, accountID, journeyID); err != nil {
		return nil, err
	}

	rows, err := s.analytics.DailyTotals(ctx, journeyID, accountID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byDate := make(map[string]float64, len(rows))
	for _, row := range rows {
		byDate[utils.FormatDate(row.Date)] = row.TotalScore
	}

	// One cell per calendar day in the period, checked in or not.
	days := make([]response_models.HeatmapDay, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := utils.FormatDate(d)
		total, ok := byDate[key]
		days = append(days, response_models.HeatmapDay{
			Date:       key,
			TotalScore: total,
			CheckedIn:  ok,
		})
	}

	return &response_models.HeatmapResponse{
		Days:   days,
		Period: periodOf(from, to),
	}, nil
}

func periodOf(from, to time.Time) response_models.Period {
	return response_models.Period{
		Start: utils.FormatDate(from),
		End:   utils.FormatDate(to),
	}
}
