package main

import (
	"chat-relay-server/internal/repository/postgres"
	"log"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	if err := postgres.RunMigrations(app.Config.PostgresURL); err != nil {
		app.Logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	go app.Hub.Run()

	app.Logger.Info("server starting", zap.String("addr", app.Config.HTTPAddr))
	if err := http.ListenAndServe(app.Config.HTTPAddr, app.Router); err != nil {
		app.Logger.Fatal("server failed", zap.Error(err))
	}
}
