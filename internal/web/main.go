package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	adm "github.com/webfolio/webfolio/internal/admin"
	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/intake"
	fiberlogger "github.com/webfolio/webfolio/internal/logger/adapter/fiber"
	"github.com/webfolio/webfolio/internal/media"
	"github.com/webfolio/webfolio/internal/notify"
	"github.com/webfolio/webfolio/internal/richtext"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web/handler/admin"
	"github.com/webfolio/webfolio/internal/web/handler/home"
	"github.com/webfolio/webfolio/internal/web/handler/login"
	"github.com/webfolio/webfolio/internal/web/handler/logout"
	"github.com/webfolio/webfolio/internal/web/handler/register"
	authmiddleware "github.com/webfolio/webfolio/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// ErrNilDependency is returned by New when the config, db or a store is missing.
var ErrNilDependency = errors.New("web service dependency is nil")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	messages     *intake.Messages
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a signal and shuts the web service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown

	// pending message notifications
	s.messages.Wait()

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates the web service: template engine, middleware and every handler.
func New(cfg *config.Config, db *gorm.DB, store media.Store, notifier notify.Notifier) (*Service, error) {
	if cfg == nil || db == nil || store == nil {
		return nil, ErrNilDependency
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg, store),
		},
	)

	validator := validation.New()
	provider := auth.NewLocalProvider(db, validator)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fastShutDown: cfg.DevMode,
		messages:     intake.NewMessages(db, validator, notifier),
	}
	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		QuietPrefixes: []string{"/static/", mediaMount(cfg.Media.URLPrefix) + "/", MetricsPath},
		FormField:     forms.FormIDField,
		UsernameFunc:  auth.Username,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(staticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// uploaded photos, object storage serves its own
	if local, ok := store.(*media.Local); ok {
		app.Use(mediaMount(cfg.Media.URLPrefix),
			filesystem.New(filesystem.Config{Root: local.FileSystem()}),
		)
	}

	app.Use(authmiddleware.New(db))

	if err := errors.Join(
		home.Handler.Init(app, cfg, db, service.messages, intake.NewSubscriptions(db, validator)),
		login.Handler.Init(app, cfg, provider, validator),
		logout.Handler.Init(app, cfg),
		register.Handler.Init(app, cfg, provider),
		admin.Handler.Init(app, cfg, db, validator, adm.NewRegistry(), store),
	); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

func newTemplateEngine(cfg *config.Config, store media.Store) *html.Engine {
	templateEngine := html.NewFileSystem(http.FS(views()), ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New(templatesDir, ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("mul", func(a, b int) int {
		return a * b
	})
	templateEngine.AddFunc("markdown", func(src string) template.HTML {
		return richtext.Render(src)
	})
	templateEngine.AddFunc("mediaURL", func(key string) string {
		if key == "" {
			return ""
		}

		return store.URL(key)
	})

	return templateEngine
}

// mediaMount returns the route prefix of locally served photos.
func mediaMount(urlPrefix string) string {
	p := strings.TrimSuffix(urlPrefix, "/")
	if !strings.HasPrefix(p, "/") {
		return "/media"
	}

	return p
}
