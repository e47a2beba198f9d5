// controllers/checkout.go
package controllers

import (
	"html/template"
	"log/slog"
	"net/http"

	"go-shopfront/models"
	"go-shopfront/utils"
)

// CheckoutController walks the simulated checkout: order summary, payment
// confirmation, and the final order submission.
type CheckoutController struct {
	Catalog  ProductLoader
	Sessions CartSessions
	Email    *utils.EmailService
	Tmpl     *template.Template
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(catalog ProductLoader, sessions CartSessions, email *utils.EmailService, tmpl *template.Template) *CheckoutController {
	return &CheckoutController{Catalog: catalog, Sessions: sessions, Email: email, Tmpl: tmpl}
}

// Payment renders the order summary. Each cart entry gets its own line with
// quantity 1; the total is the sum of unit prices over all entries.
func (ch *CheckoutController) Payment(w http.ResponseWriter, r *http.Request) {
	products, err := ch.Catalog.LoadProducts()
	if err != nil {
		slog.Error("loading catalog", "err", err)
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	items, total, err := models.ProjectEach(ch.Sessions.Cart(r), products)
	if err != nil {
		slog.Error("projecting cart for payment", "err", err)
		http.Error(w, "Error computing cart", http.StatusInternalServerError)
		return
	}

	slog.Info("cart loaded for payment", "items", len(items), "total", total.StringFixed(2))
	render(ch.Tmpl, w, "payment.html", map[string]any{"Items": items, "Total": total})
}

// ConfirmPayment simulates an always-approve payment: it recomputes the
// per-entry line items and total, empties the cart, and echoes the result.
func (ch *CheckoutController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	cart := ch.Sessions.Cart(r)
	if cart.Size() == 0 {
		slog.Warn("payment attempted with empty cart")
		respondError(w, http.StatusBadRequest, "Empty cart")
		return
	}

	products, err := ch.Catalog.LoadProducts()
	if err != nil {
		slog.Error("loading catalog", "err", err)
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	items, total, err := models.ProjectEach(cart, products)
	if err != nil {
		slog.Error("projecting cart for confirmation", "err", err)
		http.Error(w, "Error computing cart", http.StatusInternalServerError)
		return
	}

	if err := ch.Sessions.ClearCart(w, r); err != nil {
		slog.Error("clearing cart", "err", err)
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, models.PaymentConfirmation{
		Message:     "Simulated payment approved",
		TotalAmount: total,
		Cart:        items,
	})
}

// Submit accepts the order form, logs it, and renders the confirmation page.
// Cart state is untouched; nothing is stored. Beyond body-is-JSON the fields
// are not validated.
func (ch *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	var sub models.OrderSubmission
	if err := decodeBody(r, &sub); err != nil {
		http.Error(w, "No JSON received", http.StatusBadRequest)
		return
	}

	slog.Info("order submission",
		"buyer", sub.BuyerBillingID,
		"product", sub.ChosenProduct,
		"address", sub.ShippingAddress,
		"contact_method", sub.ContactMethod,
		"contact_info", sub.ContactInfo,
	)

	if ch.Email != nil && ch.Email.Enabled() {
		go func(s models.OrderSubmission) {
			if err := ch.Email.SendSubmissionNotification(s); err != nil {
				slog.Error("sending submission notification", "err", err)
			}
		}(sub)
	}

	render(ch.Tmpl, w, "ok.html", nil)
}
