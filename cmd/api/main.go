package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/pets-paws/pets-paws-backend/internal/config"
	"github.com/pets-paws/pets-paws-backend/internal/logging"
	"github.com/pets-paws/pets-paws-backend/internal/media"
	"github.com/pets-paws/pets-paws-backend/internal/migrations"
	miniorepo "github.com/pets-paws/pets-paws-backend/internal/repository/minio"
	"github.com/pets-paws/pets-paws-backend/internal/repository/postgres"
	"github.com/pets-paws/pets-paws-backend/internal/service"
	transport "github.com/pets-paws/pets-paws-backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		mirror, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash mirror disabled: %v", err)
		} else {
			defer mirror.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, mirror))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("minio connect: %v", err)
	}
	storage := miniorepo.NewStorage(minioClient, cfg.MinIOEndpoint, cfg.MinIOPublicURL, cfg.MinIOUseSSL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, cfg.MinIOBucketPets); err != nil {
		log.Fatalf("minio bucket: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	petRepo := postgres.NewPetRepo(db)

	authService := service.NewAuthService(userRepo, sessionRepo, time.Duration(cfg.SessionTTLDays)*24*time.Hour)
	petService := service.NewPetService(petRepo, userRepo)
	mediaService := service.NewMediaService(storage, service.MediaServiceConfig{
		Bucket:         cfg.MinIOBucketPets,
		MaxImageBytes:  cfg.PetImageMaxBytes,
		ImageProcessor: media.NewFFMPEGProcessor(cfg.FFmpegPath, media.DefaultMaxDimension),
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAuth(e, authService)
	transport.RegisterPets(e, authService, petService)
	transport.RegisterNGO(e, authService, petService)
	transport.RegisterMedia(e, authService, mediaService)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
