package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shopfront/models"
)

func carryCookies(req *http.Request, rec *httptest.ResponseRecorder) {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
}

func TestSessionCartRoundTrip(t *testing.T) {
	ss := NewSessionService("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/add_to_cart", nil)
	require.NoError(t, ss.SaveCart(rec, req, models.Cart{1, 1, 2}))

	next := httptest.NewRequest("GET", "/cart", nil)
	carryCookies(next, rec)
	assert.Equal(t, models.Cart{1, 1, 2}, ss.Cart(next))
}

func TestSessionCartAbsentMeansEmpty(t *testing.T) {
	ss := NewSessionService("test-secret")
	req := httptest.NewRequest("GET", "/cart", nil)
	assert.Equal(t, 0, ss.Cart(req).Size())
}

func TestSessionCartUndecodableCookieMeansEmpty(t *testing.T) {
	ss := NewSessionService("test-secret")
	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "storefront", Value: "garbage"})
	assert.Equal(t, 0, ss.Cart(req).Size())
}

func TestSessionClearCart(t *testing.T) {
	ss := NewSessionService("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/add_to_cart", nil)
	require.NoError(t, ss.SaveCart(rec, req, models.Cart{3}))

	mid := httptest.NewRequest("POST", "/confirm_payment", nil)
	carryCookies(mid, rec)
	cleared := httptest.NewRecorder()
	require.NoError(t, ss.ClearCart(cleared, mid))

	final := httptest.NewRequest("GET", "/cart", nil)
	carryCookies(final, cleared)
	assert.Equal(t, 0, ss.Cart(final).Size())
}
