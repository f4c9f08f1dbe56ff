package db_fx

import (
	"go.uber.org/fx"

	"github.com/vignesh-ravichandran/Crimson/internal/infra"
)

var Module = fx.Provide(
	infra.InitPostgresql,
	infra.InitRedis,
)
