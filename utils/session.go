package utils

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"go-shopfront/models"
)

const (
	sessionName = "storefront"
	cartKey     = "cart"
)

func init() {
	gob.Register(models.Cart{})
}

// SessionService owns per-visitor cart state in a cookie-backed session.
// Per-visitor isolation comes from the cookie itself; concurrent requests
// from the same session racing on the cart are an accepted hazard.
type SessionService struct {
	store sessions.Store
}

// NewSessionService creates a session service signing cookies with secret.
func NewSessionService(secret string) *SessionService {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	return &SessionService{store: store}
}

// Cart returns the visitor's cart. An absent session, an undecodable cookie
// or a missing key all mean an empty cart.
func (ss *SessionService) Cart(r *http.Request) models.Cart {
	sess, err := ss.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	if cart, ok := sess.Values[cartKey].(models.Cart); ok {
		return cart
	}
	return nil
}

// SaveCart writes the cart back to the session.
func (ss *SessionService) SaveCart(w http.ResponseWriter, r *http.Request, cart models.Cart) error {
	sess, _ := ss.store.Get(r, sessionName)
	sess.Values[cartKey] = cart
	return sess.Save(r, w)
}

// ClearCart drops the cart key entirely, used once on checkout confirmation.
func (ss *SessionService) ClearCart(w http.ResponseWriter, r *http.Request) error {
	sess, _ := ss.store.Get(r, sessionName)
	delete(sess.Values, cartKey)
	return sess.Save(r, w)
}
