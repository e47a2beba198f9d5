// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-shopfront/controllers"
	"go-shopfront/middleware"
	"go-shopfront/routes"
	"go-shopfront/templates"
	"go-shopfront/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := utils.LoadConfig()
	utils.NewLogger(cfg.LogLevel)

	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize services
	catalog := utils.NewCatalogService(cfg.CatalogPath)
	sessions := utils.NewSessionService(cfg.SessionSecret)
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender, cfg.ShopEmail)

	// Initialize controllers
	productController := controllers.NewProductController(catalog, tmpl)
	cartController := controllers.NewCartController(catalog, sessions, tmpl)
	checkoutController := controllers.NewCheckoutController(catalog, sessions, emailService, tmpl)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, productController, cartController, checkoutController)
	router.Use(middleware.LoggingMiddleware)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
