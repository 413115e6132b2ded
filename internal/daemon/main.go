// Package daemon wires storage, sessions, media and mail into the web service.
package daemon

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/db"
	"github.com/webfolio/webfolio/internal/db/dsn"
	"github.com/webfolio/webfolio/internal/db/migrate"
	"github.com/webfolio/webfolio/internal/media"
	"github.com/webfolio/webfolio/internal/notify"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web"
	"github.com/webfolio/webfolio/internal/web/session"
)

// sessionTable holds the sessions on mysql and postgres.
const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves http until a shutdown signal arrives.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go func() {
		log.Info().Str("addr", addr).Msg("starting http server")

		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	d.webService.WaitShutdown()

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = migrate.Up(gdb); err != nil {
		return nil, err
	}

	if err = seed(gdb); err != nil {
		return nil, err
	}

	session.Init(sessionStorage(cfg))

	store, err := media.New(ctx, cfg.Media)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init media store")
	}

	notifier, err := notify.New(cfg.Mail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init mail notifications")
	}

	webService, err := web.New(cfg, gdb, store, notifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init web service")
	}

	return &Daemon{cfg: cfg, db: gdb, webService: webService}, nil
}

// sessionStorage keeps sessions in the application database when it is a server.
// sqlite sessions stay in memory and are lost on restart.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.PostgresURI(cfg),
			Table:         sessionTable,
		})
	default:
		log.Warn().Str("engine", cfg.DB.GormEngine).Msg("sessions are kept in memory")

		return nil
	}
}

// Provider returns the local account provider on db, for the account commands.
func Provider(gdb *gorm.DB) *auth.LocalProvider {
	return auth.NewLocalProvider(gdb, validation.New())
}
