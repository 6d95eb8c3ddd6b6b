// Command sessiond is a small HTTP service issuing stateless JWT sessions.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/jwtsession/internal/httpapi"
	"github.com/dmitrymomot/jwtsession/pkg/config"
	"github.com/dmitrymomot/jwtsession/pkg/cookie"
	"github.com/dmitrymomot/jwtsession/pkg/environment"
	"github.com/dmitrymomot/jwtsession/pkg/httpserver"
	"github.com/dmitrymomot/jwtsession/pkg/logger"
	"github.com/dmitrymomot/jwtsession/pkg/requestid"
	"github.com/dmitrymomot/jwtsession/pkg/secrets"
	"github.com/dmitrymomot/jwtsession/pkg/session"
)

type appConfig struct {
	Name string `env:"APP_NAME" envDefault:"sessiond"`
	Env  string `env:"APP_ENV" envDefault:"development"`
	// Key is the hex encoded master key; the session key is derived from it
	// unless SESSION_KEY is set.
	Key string `env:"APP_KEY"`
}

// sessionSettings mirrors session.Config without its Validate method so the
// key can be derived after loading.
type sessionSettings session.Config

var errNoKey = errors.New("either SESSION_KEY or APP_KEY must be set")

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app      appConfig
		httpCfg  httpserver.Config
		cookies  cookie.Config
		settings sessionSettings
	)
	if err := errors.Join(
		config.Load(&app),
		config.Load(&httpCfg),
		config.Load(&cookies),
		config.Load(&settings),
	); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	sessCfg, err := sessionConfig(app, settings)
	if err != nil {
		return err
	}

	if environment.Parse(app.Env).IsProduction() && !sessCfg.SecureCookie && !cookies.Secure {
		log.Warn("session cookies are sent without the Secure flag in production")
	}

	mgr, err := session.NewManager(sessCfg,
		session.WithLogger(log.With(logger.Component("session"))),
		session.WithCookieManager(cookie.NewFromConfig(cookies)),
	)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("session settings",
				slog.String("algorithm", sessCfg.Algorithm),
				logger.TokenName(sessCfg.TokenName),
				logger.Duration(sessCfg.Lifetime),
			)
		}),
	)

	return srv.Run(ctx, httpapi.NewRouter(mgr, log))
}

// sessionConfig fills the signing key from APP_KEY when SESSION_KEY is empty.
func sessionConfig(app appConfig, settings sessionSettings) (session.Config, error) {
	cfg := session.Config(settings)
	if cfg.Key != "" {
		return cfg, cfg.Validate()
	}
	if app.Key == "" {
		return cfg, errNoKey
	}

	master, err := hex.DecodeString(app.Key)
	if err != nil {
		return cfg, fmt.Errorf("APP_KEY must be hex encoded: %w", err)
	}
	cfg.Key, err = secrets.DeriveHexKey(master, "session")
	if err != nil {
		return cfg, fmt.Errorf("deriving session key: %w", err)
	}

	return cfg, cfg.Validate()
}
