package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-shopfront/models"
)

// ErrCatalogUnavailable is returned when the catalog file is missing or does
// not parse. Handlers treat it as fatal for the request.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogService loads the product catalog from a JSON file. The file is
// re-read on every call; products are never cached or mutated.
type CatalogService struct {
	Path string
}

// NewCatalogService creates a new CatalogService reading from path.
func NewCatalogService(path string) *CatalogService {
	return &CatalogService{Path: path}
}

// LoadProducts reads and parses the catalog file.
func (cs *CatalogService) LoadProducts() ([]models.Product, error) {
	raw, err := os.ReadFile(cs.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return products, nil
}
