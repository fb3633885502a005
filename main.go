// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"homebites/controllers"
	"homebites/routes"
	"homebites/services"
	"homebites/storage"
	"homebites/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client := storage.Connect(uri)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	db := storage.New(client, "homebites")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	// Wire services
	userService := services.NewUserService(db.Users, func(email, role string) (string, error) {
		return utils.GenerateJWT("", email, role)
	})
	cookService := services.NewCookService(db.Cooks, db.Users)
	menuService := services.NewMenuService(db.Menu, db.Cooks)
	cartService := services.NewCartService(db.Carts, db.Menu)
	orderService := services.NewOrderService(db.Orders, db.Carts, db.Menu)
	reviewService := services.NewReviewService(db.Reviews, db.Cooks)

	// Initialize controllers
	userController := controllers.NewUserController(userService, emailService)
	cookController := controllers.NewCookController(cookService)
	menuController := controllers.NewMenuController(menuService, cookService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService, userService, emailService)
	reviewController := controllers.NewReviewController(reviewService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, cookController, menuController,
		cartController, orderController, reviewController)

	handler := cors.AllowAll().Handler(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
