// Package db opens the gorm connection for the configured engine.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/db/dsn"
)

// ErrUnknownEngine is returned for a gorm engine that has no driver.
var ErrUnknownEngine = errors.New("unknown gorm engine")

const slowQuery = 200 * time.Millisecond

// gormWriter sends gorm's log lines to the global zerolog logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	log.Info().Str("component", "gorm").Msgf(format, args...)
}

// Open connects to the database described by cfg.DB.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.New(gormmysql.Config{
			DSN:               dsn.MySQL(cfg),
			DefaultStringSize: 191, //nolint:mnd // utf8mb4 index limit
		})
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.PostgresURI(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(dsn.SQLite(cfg))
	default:
		return nil, errors.Wrap(ErrUnknownEngine, cfg.DB.GormEngine)
	}

	logLevel := gormlogger.Warn
	if cfg.DevMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(gormWriter{}, gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "database connection failed")
	}

	if cfg.DB.GormEngine == config.EngineSQLite || cfg.DB.GormEngine == "" {
		// sqlite serializes writers, one connection avoids "database is locked"
		// and keeps a :memory: database alive for the whole process.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "resolve sql db")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
