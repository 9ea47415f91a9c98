package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mystore/catalog/config"
	"github.com/mystore/catalog/internal/adapter/httphandler"
	"github.com/mystore/catalog/internal/adapter/kafka"
	"github.com/mystore/catalog/internal/adapter/storage"
	"github.com/mystore/catalog/internal/core/port"
	"github.com/mystore/catalog/internal/core/service"
	"github.com/mystore/catalog/pkg/schema"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	changes    port.ChangesProducer
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initChangeFeed()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
}

func (app *App) initChangeFeed() {
	const op = "App.initChangeFeed"

	if !app.cfg.ChangeFeedEnabled() {
		slog.Info("change feed is disabled: no seed brokers configured")
		return
	}

	serde, err := schema.NewSerdeProductChangeV1()
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewChangesProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.ChangesTopic,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.changes = producer
}

func (app *App) initHTTPServer() {
	repo := storage.NewProductsRepository(app.sqldb)
	svc := service.New(repo, app.changes)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, svc, svc)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.changes != nil {
		app.changes.Close()
	}
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
