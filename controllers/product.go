package controllers

import (
	"html/template"
	"log/slog"
	"net/http"
)

// ProductController serves the storefront pages backed by the catalog.
type ProductController struct {
	Catalog ProductLoader
	Tmpl    *template.Template
}

// NewProductController creates a new ProductController.
func NewProductController(catalog ProductLoader, tmpl *template.Template) *ProductController {
	return &ProductController{Catalog: catalog, Tmpl: tmpl}
}

// Home renders the landing page.
func (pc *ProductController) Home(w http.ResponseWriter, r *http.Request) {
	render(pc.Tmpl, w, "home.html", nil)
}

// Contact renders the static contact page.
func (pc *ProductController) Contact(w http.ResponseWriter, r *http.Request) {
	render(pc.Tmpl, w, "contact.html", nil)
}

// Shop renders the full product grid.
func (pc *ProductController) Shop(w http.ResponseWriter, r *http.Request) {
	pc.renderCatalog(w, "shop.html")
}

// Apparel renders the apparel view of the catalog. Which products show is
// the template's concern; the handler passes the whole catalog.
func (pc *ProductController) Apparel(w http.ResponseWriter, r *http.Request) {
	pc.renderCatalog(w, "apparel.html")
}

func (pc *ProductController) renderCatalog(w http.ResponseWriter, page string) {
	products, err := pc.Catalog.LoadProducts()
	if err != nil {
		slog.Error("loading catalog", "err", err)
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	render(pc.Tmpl, w, page, map[string]any{"Products": products})
}
