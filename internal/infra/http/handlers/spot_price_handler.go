package handlers

import (
	"net/http"

	"github.com/xavierca1/rock-bullion-api/internal/usecase"
)

type SpotPriceHandler struct {
	SpotPriceUC *usecase.SpotPriceUseCase
}

func NewSpotPriceHandler(uc *usecase.SpotPriceUseCase) *SpotPriceHandler {
	return &SpotPriceHandler{SpotPriceUC: uc}
}

func (h *SpotPriceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.SpotPriceUC.Execute())
}
