package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookease/internal/config"
	"bookease/internal/database"
	"bookease/internal/middleware"
	"bookease/internal/modules/auth"
	"bookease/internal/modules/booking"
	"bookease/internal/modules/catalog"
	jwtsvc "bookease/internal/pkg/jwt"
	"bookease/internal/repository"
	"bookease/internal/worker"
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
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, int(cfg.JWTTTL.Seconds()), cfg.CookieSecure)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := worker.NewCompletionSweeper(bookingRepo, cfg.SweepInterval)
	go sweeper.Run(ctx)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api.Group("/auth"))
		catalogHandler.RegisterRoutes(api.Group("/services"))

		// protected
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(auth.SessionCookie, j))
		{
			authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
			bookingHandler.RegisterRoutes(protected.Group("/bookings"))

			admin := protected.Group("/services")
			admin.Use(middleware.AdminOnly())
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
