package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Jasrah85/vibrant-art-group/internal/config"
	"github.com/Jasrah85/vibrant-art-group/internal/database"
	"github.com/Jasrah85/vibrant-art-group/internal/email"
	"github.com/Jasrah85/vibrant-art-group/internal/middleware"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/activity"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/admin"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/auth"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/catalog"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/commission"
	jwtsvc "github.com/Jasrah85/vibrant-art-group/internal/pkg/jwt"
	"github.com/Jasrah85/vibrant-art-group/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	requestRepo := repository.NewCommissionRequestRepository(db)
	eventRepo := repository.NewCommissionEventRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	userRepo := repository.NewAdminUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	mailer := email.NewSMTPSender(email.SMTPConfig{
		Host:          cfg.SMTPHost,
		Port:          cfg.SMTPPort,
		Username:      cfg.SMTPUser,
		Password:      cfg.SMTPPass,
		From:          cfg.EmailFrom,
		SkipTLSVerify: cfg.SMTPSkipTLSVerify,
	})

	hub := activity.NewHub()
	defer hub.Close()

	eventLog := commission.NewEventLog(eventRepo, hub)

	commissionService := commission.NewService(requestRepo, eventLog, mailer, commission.NotifyConfig{
		AdminEmail: cfg.AdminNotifyEmail,
		AppURL:     cfg.AppURL,
	})
	commissionHandler := commission.NewHandler(commissionService)

	catalogService := catalog.NewService(artistRepo, galleryRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	authService := auth.NewService(userRepo, j, cfg.IsAllowedAdmin)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(requestRepo, eventRepo, artistRepo, eventLog, mailer)
	adminHandler := admin.NewHandler(adminService)

	activityHandler := activity.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		commissionHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		authHandler.RegisterRoutes(v1)

		// back office
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin(j))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	// Websocket auth rides the query string, not the Authorization header.
	activityHandler.RegisterRoutes(&r.RouterGroup)

	addr := ":" + getPort()
	log.Printf("listening on %s env=%s", addr, cfg.AppEnv)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
