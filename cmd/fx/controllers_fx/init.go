package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/vignesh-ravichandran/Crimson/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewCheckinController),
	fx.Provide(controllers.NewAnalyticsController),
)
