// routes/routes.go
package routes

import (
	"homebites/controllers"
	"homebites/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	cookController *controllers.CookController,
	menuController *controllers.MenuController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/verify", userController.VerifyEmail).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Cook profile routes
	router.HandleFunc("/cooks", cookController.GetCooks).Methods("GET")
	router.HandleFunc("/cooks/{id}", cookController.GetCookByID).Methods("GET")

	cook := router.PathPrefix("/").Subrouter()
	cook.Use(middleware.AuthMiddleware)
	cook.Use(middleware.CookMiddleware)
	cook.HandleFunc("/cooks", cookController.CreateCook).Methods("POST")
	cook.HandleFunc("/cooks/{id}", cookController.UpdateCook).Methods("PUT")
	cook.HandleFunc("/cook/profile", cookController.GetOwnProfile).Methods("GET")

	// Menu routes
	router.HandleFunc("/menu", menuController.GetMenuItems).Methods("GET")
	router.HandleFunc("/menu/{id}", menuController.GetMenuItemByID).Methods("GET")
	cook.HandleFunc("/menu", menuController.CreateMenuItem).Methods("POST")
	cook.HandleFunc("/menu/{id}", menuController.UpdateMenuItem).Methods("PUT")
	cook.HandleFunc("/menu/{id}", menuController.DeleteMenuItem).Methods("DELETE")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")

	// Order routes
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")
	router.HandleFunc("/orders/{id}", orderController.UpdateOrder).Methods("PUT")
	router.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")

	// Review routes
	router.HandleFunc("/reviews", reviewController.GetReviews).Methods("GET")
	router.HandleFunc("/reviews", reviewController.CreateReview).Methods("POST")
}
