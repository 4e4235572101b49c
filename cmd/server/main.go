package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/adikhanov/bondify-backend/internal/config"
	"github.com/adikhanov/bondify-backend/internal/database"
	"github.com/adikhanov/bondify-backend/internal/handlers"
	"github.com/adikhanov/bondify-backend/internal/repository"
	"github.com/adikhanov/bondify-backend/internal/services"
	"github.com/adikhanov/bondify-backend/pkg/logger"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB Atlas
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	friendService := services.NewFriendService(friendRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(cfg)
	userHandler := handlers.NewUserHandler(userService)
	friendHandler := handlers.NewFriendHandler(friendService)

	router := handlers.NewRouter(cfg, authHandler, userHandler, friendHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:5174"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Bondify is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
