package main

import (
	"context"
	"fmt"

	"projecthub/internal/adapter/db"
	"projecthub/internal/adapter/http/handlers"
	"projecthub/internal/adapter/memory"
	"projecthub/internal/adapter/mongodb"
	"projecthub/internal/config"
	"projecthub/internal/core/ports"
)

// store bundles the repositories of the configured driver.
type store struct {
	users      ports.UserRepository
	projects   ports.ProjectRepository
	tasks      ports.TaskRepository
	transactor ports.Transactor
	ping       handlers.StorePinger
	close      func() error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMySQL, config.StoreSQLite:
		conn, err := db.ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &store{
			users:      db.NewUserRepository(conn),
			projects:   db.NewProjectRepository(conn),
			tasks:      db.NewTaskRepository(conn),
			transactor: db.NewTransactor(conn),
			ping:       conn.PingContext,
			close:      conn.Close,
		}, nil

	case config.StoreMongoDB:
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		docs := mongodb.NewStore(database)
		return &store{
			users:      docs,
			projects:   docs,
			tasks:      docs,
			transactor: docs,
			ping:       func(ctx context.Context) error { return mongodb.Ping(ctx, client) },
			close:      func() error { return client.Disconnect(context.Background()) },
		}, nil

	case config.StoreMemory:
		mem := memory.NewStore()
		return &store{
			users:      mem,
			projects:   mem,
			tasks:      mem,
			transactor: mem,
			ping:       func(context.Context) error { return nil },
			close:      func() error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
