package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shopfront/controllers"
	"go-shopfront/models"
	"go-shopfront/routes"
	"go-shopfront/templates"
	"go-shopfront/utils"
)

type stubCatalog struct {
	products []models.Product
	err      error
}

func (s stubCatalog) LoadProducts() ([]models.Product, error) {
	return s.products, s.err
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Monstera Tee", Price: "$10.00", Imgs: []string{"img/tee.jpg"}},
		{ID: 2, Name: "Fern Hoodie", Price: "$45.50", Imgs: []string{"img/hoodie.jpg"}},
	}
}

// env wires the controllers into the real route table and carries session
// cookies across requests, like a browser would.
type env struct {
	t       *testing.T
	router  *mux.Router
	cookies []*http.Cookie
}

func newEnv(t *testing.T, catalog controllers.ProductLoader) *env {
	t.Helper()
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	sessions := utils.NewSessionService("test-secret")
	email := utils.NewEmailService("", "", "")

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewProductController(catalog, tmpl),
		controllers.NewCartController(catalog, sessions, tmpl),
		controllers.NewCheckoutController(catalog, sessions, email, tmpl),
	)
	return &env{t: t, router: router}
}

func (e *env) do(method, target, body string) *httptest.ResponseRecorder {
	e.t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range e.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		e.cookies = cookies
	}
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestPages(t *testing.T) {
	e := newEnv(t, stubCatalog{products: testProducts()})

	for _, path := range []string{"/", "/contact"} {
		rec := e.do("GET", path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestShopRendersCatalog(t *testing.T) {
	e := newEnv(t, stubCatalog{products: testProducts()})

	for _, path := range []string{"/shop", "/apparel"} {
		rec := e.do("GET", path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Monstera Tee")
		assert.Contains(t, rec.Body.String(), "Fern Hoodie")
	}
}

func TestShopCatalogUnavailable(t *testing.T) {
	e := newEnv(t, stubCatalog{err: utils.ErrCatalogUnavailable})

	rec := e.do("GET", "/shop", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
