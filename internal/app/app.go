// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/canadagpt/canadagpt-api/internal/pkg/clock"
	"github.com/canadagpt/canadagpt-api/internal/pkg/config"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/hash"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/jwt"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uuid      uid.StringID
	jwt       jwt.JWT
	codec     *secretbox.Codec

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initSecretbox()
	app.initDatabase()
	app.initCache()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
