package main

import (
	"context"
	"log"

	"github.com/harentsoaR/dental-care-api/internal/config"
	"github.com/harentsoaR/dental-care-api/internal/repository"
	"github.com/harentsoaR/dental-care-api/internal/repository/memory"
)

// openStore returns the repositories for the configured driver and a func
// that releases the underlying connection.
func openStore(ctx context.Context, cfg *config.Config) (repository.Repositories, func(context.Context) error, error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Println("Using in-memory store; data is lost on restart.")
		return memory.NewStore().Repositories(), func(context.Context) error { return nil }, nil
	}

	store, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	log.Println("Successfully connected to MongoDB!")

	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(context.Background())
		return repository.Repositories{}, nil, err
	}
	return store.Repositories(), store.Close, nil
}

// seedAdmin makes sure the configured email can reach admin-only routes.
func seedAdmin(ctx context.Context, users repository.UserRepository, email string) error {
	if email == "" {
		return nil
	}
	res, err := users.EnsureAdmin(ctx, email)
	if err != nil {
		return err
	}
	if res.UpsertedCount > 0 || res.ModifiedCount > 0 {
		log.Printf("Admin access granted to %s", email)
	}
	return nil
}
