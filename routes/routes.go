// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-shopfront/controllers"
)

// RegisterRoutes sets up all the routes for the storefront
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController) {
	// Page routes
	router.HandleFunc("/", productController.Home).Methods("GET")
	router.HandleFunc("/shop", productController.Shop).Methods("GET")
	router.HandleFunc("/apparel", productController.Apparel).Methods("GET")
	router.HandleFunc("/contact", productController.Contact).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.ViewCart).Methods("GET")
	router.HandleFunc("/add_to_cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/remove_from_cart/{product_id:[0-9]+}", cartController.RemoveFromCart).Methods("GET")
	router.HandleFunc("/update_cart", cartController.UpdateCart).Methods("POST")

	// Checkout routes
	router.HandleFunc("/payment", checkoutController.Payment).Methods("GET")
	router.HandleFunc("/confirm_payment", checkoutController.ConfirmPayment).Methods("POST")
	router.HandleFunc("/submit", checkoutController.Submit).Methods("POST")

	// Static assets
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}
