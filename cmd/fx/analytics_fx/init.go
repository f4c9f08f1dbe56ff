package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
)

var Module = fx.Provide(provideAnalyticsRepo, provideAnalyticsService)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	journeyRepo repositories.JourneyRepository,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(analyticsRepo, journeyRepo)
}
