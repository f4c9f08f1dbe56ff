package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vignesh-ravichandran/Crimson/cmd/fx/account_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/analytics_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/checkin_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/config_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/controllers_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/db_fx"
	"github.com/vignesh-ravichandran/Crimson/cmd/fx/journey_fx"
	"github.com/vignesh-ravichandran/Crimson/internal/api/controllers"
	"github.com/vignesh-ravichandran/Crimson/internal/config"
	"github.com/vignesh-ravichandran/Crimson/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		journey_fx.Module,
		checkin_fx.Module,
		analytics_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController,
	checkinController *controllers.CheckinController,
	analyticsController *controllers.AnalyticsController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	RegisterRoutes(r, accountController, journeyController, checkinController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController,
	checkinController *controllers.CheckinController,
	analyticsController *controllers.AnalyticsController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/google/login", accountController.GoogleLogin)
	authGroup.GET("/google/callback", accountController.GoogleCallback)
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	usersGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	usersGroup.GET("/me", accountController.GetMe)
	usersGroup.PUT("/me", accountController.UpdateMe)

	journeysGroup := r.Group("/journeys", middleware.JWTAuthMiddleware())
	journeysGroup.POST("", journeyController.CreateJourney)
	journeysGroup.GET("", journeyController.ListJourneys)
	journeysGroup.GET("/:journeyId", journeyController.GetJourneyDetails)
	journeysGroup.POST("/:journeyId/join", journeyController.JoinJourney)
	journeysGroup.POST("/:journeyId/invites", journeyController.SendInvite)

	checkinsGroup := r.Group("/checkins", middleware.JWTAuthMiddleware())
	checkinsGroup.POST("", checkinController.SubmitCheckin)
	checkinsGroup.GET("", checkinController.ListCheckins)

	analyticsGroup := r.Group("/analytics", middleware.JWTAuthMiddleware())
	analyticsGroup.GET("/:journeyId/radar", analyticsController.GetRadarData)
	analyticsGroup.GET("/:journeyId/line", analyticsController.GetLineData)
	analyticsGroup.GET("/:journeyId/stacked-bar", analyticsController.GetStackedBarData)
	analyticsGroup.GET("/:journeyId/heatmap", analyticsController.GetHeatmapData)
}
