package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ujwegh/leadmart/internal/app/config"
	"github.com/ujwegh/leadmart/migrations"
)

type DBStorage struct {
	DBConn *sqlx.DB
}

func NewDBStorage(cfg config.AppConfig) *DBStorage {
	db := Open(cfg.DatabaseDSN)
	// Migrate the database
	err := MigrateFS(db, migrations.FS, ".")
	if err != nil {
		panic(err)
	}

	return &DBStorage{DBConn: db}
}
