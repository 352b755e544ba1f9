package main

import (
	"alcyxob/gym-membership/internal/config"
	"alcyxob/gym-membership/internal/repository/mongo"
	"context"
	"fmt"
	"log"
)

// migrate creates the collections' indexes: the unique constraints of the
// schema and the lookups its delete rules rely on.
func main() {
	log.Println("Starting gym membership migration...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: Migration failed: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.MigrateTimeout)
	defer cancel()

	if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
		return err
	}
	log.Printf("Migration of database %q completed.", cfg.Database.Name)
	return nil
}
