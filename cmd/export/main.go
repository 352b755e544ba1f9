package main

import (
	"alcyxob/gym-membership/internal/config"
	"alcyxob/gym-membership/internal/repository/mongo"
	"alcyxob/gym-membership/internal/service"
	"alcyxob/gym-membership/internal/storage"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// export uploads the attendance roster of one workout session to object
// storage and prints a temporary download link.
func main() {
	sessionHex := flag.String("session", "", "workout session id (hex)")
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	sessionID, err := primitive.ObjectIDFromHex(*sessionHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: export -session <workout session id>")
		os.Exit(2)
	}

	url, err := run(*configPath, sessionID)
	if err != nil {
		log.Fatalf("FATAL: Roster export failed: %v", err)
	}
	fmt.Println(url)
}

func run(configPath string, sessionID primitive.ObjectID) (string, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		return "", fmt.Errorf("initialize S3 storage: %w", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return "", fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	repos := service.Repositories{
		Users:       mongo.NewMongoUserRepository(appDB),
		Plans:       mongo.NewMongoMembershipPlanRepository(appDB),
		Clients:     mongo.NewMongoClientRepository(appDB),
		Trainers:    mongo.NewMongoTrainerRepository(appDB),
		Sessions:    mongo.NewMongoWorkoutSessionRepository(appDB),
		Attendances: mongo.NewMongoAttendanceRepository(appDB),
	}
	exportService := service.NewExportService(repos, fileStorage, cfg.Export)

	export, err := exportService.ExportRoster(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return export.URL, nil
}
