package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
	"github.com/xavierca1/rock-bullion-api/internal/usecase"
)

type ProductHandler struct {
	Catalog *usecase.CatalogUseCase
}

func NewProductHandler(catalog *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	output, err := h.Catalog.ListProducts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("❌ failed to list products")
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeStorage, "could not load products")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// GetProduct (GET /api/products/{id}). O 404 mantém o corpo {"detail": ...} que o front já espera.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.Catalog.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Product not found"})
			return
		}
		log.Error().Err(err).Str("product_id", productID).Msg("❌ failed to fetch product")
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeStorage, "could not load product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}
