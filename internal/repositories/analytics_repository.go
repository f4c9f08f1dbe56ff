package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

type DimensionAverage struct {
	DimensionID  uuid.UUID
	Name         string
	Weight       int
	AvgScore     float64
	CheckinCount int
}

type DailyTotal struct {
	Date       time.Time
	TotalScore float64
}

type DailyDimensionScore struct {
	Date        time.Time
	DimensionID uuid.UUID
	Name        string
	Score       float64
	TotalScore  float64
}

type AnalyticsRepository interface {
	DimensionAverages(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DimensionAverage, error)
	DailyTotals(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DailyTotal, error)
	DailyDimensionScores(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DailyDimensionScore, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) DimensionAverages(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DimensionAverage, error) {
	var rows []DimensionAverage
	err := r.db.WithContext(ctx).
		Model(&dbm.Dimension{}).
		Select(`dimensions.id AS dimension_id,
			dimensions.name,
			dimensions.weight,
			COALESCE(AVG(checkin_details.score), 0) AS avg_score,
			COUNT(checkin_details.id) AS checkin_count`).
		Joins(`LEFT JOIN checkin_details ON checkin_details.dimension_id = dimensions.id
			AND checkin_details.deleted_at IS NULL`).
		Joins(`LEFT JOIN checkins ON checkins.id = checkin_details.checkin_id
			AND checkins.account_id = ? AND checkins.date BETWEEN ? AND ?`, accountID, from, to).
		Where("dimensions.journey_id = ?", journeyID).
		Group("dimensions.id, dimensions.name, dimensions.weight, dimensions.display_order").
		Order("dimensions.display_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyDimensionScores returns one row per (day, dimension) scored in
// the period, ordered for stacked-bar grouping.
func (r *analyticsRepository) DailyDimensionScores(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DailyDimensionScore, error) {
	var rows []DailyDimensionScore
	err := r.db.WithContext(ctx).
		Model(&dbm.CheckinDetail{}).
		Select(`checkins.date,
			checkin_details.dimension_id,
			dimensions.name,
			checkin_details.score,
			checkins.total_score`).
		Joins(`JOIN checkins ON checkins.id = checkin_details.checkin_id
			AND checkins.deleted_at IS NULL`).
		Joins("JOIN dimensions ON dimensions.id = checkin_details.dimension_id").
		Where("checkins.journey_id = ? AND checkins.account_id = ? AND checkins.date BETWEEN ? AND ?",
			journeyID, accountID, from, to).
		Order("checkins.date ASC, dimensions.display_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) DailyTotals(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]DailyTotal, error) {
	var rows []DailyTotal
	err := r.db.WithContext(ctx).
		Model(&dbm.Checkin{}).
		Select("date, total_score").
		Where("journey_id = ? AND account_id = ? AND date BETWEEN ? AND ?",
			journeyID, accountID, from, to).
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
