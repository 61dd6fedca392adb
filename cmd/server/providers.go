package main

import (
	"chat-relay-server/internal/config"
	"chat-relay-server/internal/handler"
	"chat-relay-server/internal/hub"
	"chat-relay-server/internal/pkg/logger"
	"chat-relay-server/internal/repository/mongo"
	"chat-relay-server/internal/repository/postgres"
	"context"
	"database/sql"

	"github.com/gorilla/mux"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// App is the main application container.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Hub    *hub.Hub
	Router *mux.Router
}

func provideLogger() (*zap.Logger, func(), error) {
	l, err := logger.New()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { l.Sync() }
	return l, cleanup, nil
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func provideRouter(h *handler.Handler) *mux.Router {
	r := mux.NewRouter()
	h.Register(r)
	return r
}
