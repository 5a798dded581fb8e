package db_fx

import (
	"herhzzz/internal/infra"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	infra.AutoMigrate(db)
	return db
}
