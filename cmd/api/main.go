package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"snapstream/internal/config"
	"snapstream/internal/database"
	"snapstream/internal/domain/auth"
	"snapstream/internal/domain/dashboard"
	"snapstream/internal/domain/media"
	"snapstream/internal/domain/notification"
	"snapstream/internal/domain/session"
	"snapstream/internal/middleware"
	"snapstream/internal/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&media.Media{},
		&notification.Notification{},
		&session.Session{},
	); err != nil {
		log.Fatal(err)
	}

	blobs, err := newBlobStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	tokens := token.New(cfg.SessionSecret, cfg.SessionTTL)

	sessionService := session.NewService(session.NewRepository(db), tokens)
	notificationService := notification.NewService(notification.NewRepository(db))
	mediaRepo := media.NewRepository(db)
	mediaService := media.NewService(mediaRepo, blobs, notificationService)
	authService := auth.NewService(auth.NewUserRepository(db), mediaRepo, blobs, sessionService, notificationService)

	cookieMaxAge := int(cfg.SessionTTL.Seconds())
	authHandler := auth.NewHandler(authService, cookieMaxAge, cfg.CookieSecure)
	mediaHandler := media.NewHandler(mediaService)
	notificationHandler := notification.NewHandler(notificationService)
	dashboardHandler := dashboard.NewHandler(mediaService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.MaxMultipartMemory = 32 << 20

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api, middleware.OptionalSession(sessionService))

		protected := api.Group("/")
		protected.Use(middleware.SessionAuth(sessionService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			media.RegisterRoutes(protected, mediaHandler)
			notification.RegisterRoutes(protected, notificationHandler)
			dashboard.RegisterRoutes(protected, dashboardHandler)
		}
	}

	log.Printf("listening on %s (storage=%s)", cfg.Addr, cfg.StorageBackend)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func newBlobStore(cfg *config.Config) (media.BlobStore, error) {
	if cfg.StorageBackend == config.StorageS3 {
		return media.NewS3Store(context.Background(), media.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return media.NewDiskStore(cfg.UploadDir)
}
