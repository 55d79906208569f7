package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petsitter/internal/config"
	"petsitter/internal/database"
	"petsitter/internal/middleware"
	"petsitter/internal/modules/ad"
	"petsitter/internal/modules/auth"
	"petsitter/internal/modules/catalog"
	"petsitter/internal/modules/order"
	"petsitter/internal/modules/pet"
	jwtsvc "petsitter/internal/pkg/jwt"
	"petsitter/internal/repository"
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

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	listingRepo := repository.NewSitterServiceRepository(db)
	petRepo := repository.NewPetRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)
	adRepo := repository.NewAdRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewService(userRepo, tokenRepo, addressRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, listingRepo, userRepo, addressRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	petService := pet.NewService(petRepo, userRepo)
	petHandler := pet.NewHandler(petService)

	hub := order.NewHub()
	defer hub.Close()

	orderService := order.NewService(
		orderRepo,
		userRepo,
		listingRepo,
		serviceRepo,
		petRepo,
		addressRepo,
		hub,
	)
	orderHandler := order.NewHandler(orderService)
	wsHandler := order.NewWSHandler(hub, j)

	adService := ad.NewService(adRepo)
	adHandler := ad.NewHandler(adService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	api := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)
		petHandler.RegisterRoutes(api)
		orderHandler.RegisterRoutes(api)
		adHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j, tokenRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	r.GET("/ws/orders", wsHandler.HandleWebSocket)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
