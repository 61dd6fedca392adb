//go:build wireinject
// +build wireinject

package main

import (
	"chat-relay-server/internal/config"
	"chat-relay-server/internal/handler"
	"chat-relay-server/internal/hub"
	"chat-relay-server/internal/repository/mongo"
	"chat-relay-server/internal/repository/postgres"
	"chat-relay-server/internal/service"

	"github.com/google/wire"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Infrastructure Providers
		wire.NewSet(
			provideLogger,
			provideContext,
			providePostgresDB,
			provideMongoDB,
		),
		// Repository Providers
		wire.NewSet(
			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			postgres.NewChatRoomRepository,
			wire.Bind(new(service.IChatRoomRepository), new(*postgres.ChatRoomRepository)),

			mongo.NewChatMessageRepository,
			wire.Bind(new(service.IChatMessageRepository), new(*mongo.ChatMessageRepository)),
		),
		// Service Providers
		wire.NewSet(
			service.NewUserService,
			wire.Bind(new(service.IUserService), new(*service.UserService)),

			service.NewChatRoomService,
			wire.Bind(new(service.IChatRoomService), new(*service.ChatRoomService)),

			service.NewChatMessageService,
			wire.Bind(new(service.IChatMessageService), new(*service.ChatMessageService)),
		),
		// Hub & Transport Providers
		hub.NewHub,
		handler.NewHandler,
		provideRouter,
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}
