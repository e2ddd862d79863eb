package httpapi

import (
	"context"
	"net/http"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

// Catalog is what the product handler needs from the catalog service.
type Catalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, q string) ([]domain.Product, error)
}

type ProductHandler struct {
	catalog Catalog
}

func NewProductHandler(catalog Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productListResponse struct {
	Items []domain.Product `json:"items"`
}

// GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, productListResponse{Items: products})
}

// GET /products/search?q=
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, productListResponse{Items: products})
}
