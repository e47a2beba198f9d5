package controllers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-shopfront/models"
)

// CartController handles the cart view and cart mutations.
type CartController struct {
	Catalog  ProductLoader
	Sessions CartSessions
	Tmpl     *template.Template
}

// NewCartController creates a new CartController.
func NewCartController(catalog ProductLoader, sessions CartSessions, tmpl *template.Template) *CartController {
	return &CartController{Catalog: catalog, Sessions: sessions, Tmpl: tmpl}
}

// ViewCart renders the coalesced cart with its running total. Cart entries
// missing from the catalog are skipped.
func (cc *CartController) ViewCart(w http.ResponseWriter, r *http.Request) {
	products, err := cc.Catalog.LoadProducts()
	if err != nil {
		slog.Error("loading catalog", "err", err)
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	items, total, err := models.Project(cc.Sessions.Cart(r), products)
	if err != nil {
		slog.Error("projecting cart", "err", err)
		http.Error(w, "Error computing cart", http.StatusInternalServerError)
		return
	}

	render(cc.Tmpl, w, "cart.html", map[string]any{"Items": items, "Total": total})
}

// AddToCart appends units of a product to the session cart. The quantity
// defaults to 1 and is appended as given; only its type is checked here.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartMutation
	if err := decodeBody(r, &req); err != nil {
		if errors.Is(err, errNoData) {
			respondError(w, http.StatusBadRequest, "No data received")
		} else {
			respondError(w, http.StatusBadRequest, "Invalid data")
		}
		return
	}
	if !req.ProductID.set {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	quantity := 1
	if req.Quantity.set {
		quantity = req.Quantity.value
	}

	cart := cc.Sessions.Cart(r)
	cart.Add(req.ProductID.value, quantity)
	if err := cc.Sessions.SaveCart(w, r, cart); err != nil {
		slog.Error("saving cart", "err", err)
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"total_items": cart.Size()})
}

// RemoveFromCart removes every unit of the product and sends the visitor
// back to the cart page. The route pattern only matches integer ids.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cart := cc.Sessions.Cart(r)
	cart.RemoveAll(productID)
	if err := cc.Sessions.SaveCart(w, r, cart); err != nil {
		slog.Error("saving cart", "err", err)
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusFound)
}

// UpdateCart replaces the quantity of a product: all existing units go, the
// requested quantity is appended. Quantities below 1 are rejected.
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req cartMutation
	if err := decodeBody(r, &req); err != nil {
		if errors.Is(err, errNoData) {
			respondError(w, http.StatusBadRequest, "No data received")
		} else {
			respondError(w, http.StatusBadRequest, "Invalid data")
		}
		return
	}
	if !req.ProductID.set || !req.Quantity.set {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	cart := cc.Sessions.Cart(r)
	if err := cart.Update(req.ProductID.value, req.Quantity.value); err != nil {
		respondError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}
	if err := cc.Sessions.SaveCart(w, r, cart); err != nil {
		slog.Error("saving cart", "err", err)
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "total_items": cart.Size()})
}
