package handlers

import "net/http"

const ServiceName = "Rock International Bullion API"

type HealthHandler struct{}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Handle não verifica o banco: só diz que o processo está de pé.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}
