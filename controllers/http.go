package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go-shopfront/models"
)

// ProductLoader loads the product catalog for a single request.
type ProductLoader interface {
	LoadProducts() ([]models.Product, error)
}

// CartSessions is the per-visitor cart storage the handlers mutate.
type CartSessions interface {
	Cart(r *http.Request) models.Cart
	SaveCart(w http.ResponseWriter, r *http.Request, cart models.Cart) error
	ClearCart(w http.ResponseWriter, r *http.Request) error
}

// errNoData marks a request that arrived without a body.
var errNoData = errors.New("no data received")

// decodeBody decodes a JSON request body. An absent body and a payload with
// no content (null, an empty object or array, an empty string, zero, false)
// both map to errNoData so handlers can pick the right error copy.
func decodeBody(r *http.Request, dst any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return errNoData
		}
		return err
	}
	if emptyPayload(raw) {
		return errNoData
	}
	return json.Unmarshal(raw, dst)
}

func emptyPayload(raw json.RawMessage) bool {
	switch s := strings.TrimSpace(string(raw)); s {
	case "", "null", `""`, "false":
		return true
	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n == 0
		}
		if len(s) >= 2 && (s[0] == '{' || s[0] == '[') {
			return strings.TrimSpace(s[1:len(s)-1]) == ""
		}
		return false
	}
}

// intField decodes a JSON value that should be an integer but may arrive as
// a number or a numeric string. Presence is tracked so handlers can apply
// defaults for optional fields.
type intField struct {
	value int
	set   bool
}

func (f *intField) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", s)
	}
	f.value = n
	f.set = true
	return nil
}

// cartMutation is the request body shared by the cart mutation endpoints.
type cartMutation struct {
	ProductID intField `json:"product_id"`
	Quantity  intField `json:"quantity"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func render(tmpl *template.Template, w http.ResponseWriter, page string, data any) {
	if err := tmpl.ExecuteTemplate(w, page, data); err != nil {
		slog.Error("rendering page", "page", page, "err", err)
	}
}
