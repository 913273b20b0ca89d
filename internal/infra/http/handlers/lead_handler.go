package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/infra/http/middleware"
	"github.com/xavierca1/rock-bullion-api/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	ListLeadsUC  *usecase.ListLeadsUseCase
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, listUC *usecase.ListLeadsUseCase) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: createUC,
		ListLeadsUC:  listUC,
	}
}

// CreateLead (POST /api/leads)
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := decodeJSONObject(r, &input); err != nil {
		var typeErr *json.UnmarshalTypeError
		// Field vazio = o corpo inteiro não é um objeto ([], "x", 42)
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   usecase.CodeValidation,
				Message: "validation failed: " + typeErr.Field + " (must be a " + typeErr.Type.String() + ")",
				Fields: []usecase.ValidationError{
					{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()},
				},
			})
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
		return
	}

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   domainErr.Code,
				Message: domainErr.Message,
				Fields:  domainErr.Fields,
			})
			return
		}

		log.Error().Err(err).Msg("❌ failed to create lead")
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeStorage, "could not save your inquiry, please try again later")
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusOK, output)
}

// ListLeads (GET /api/leads). Público, sem autenticação.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListLeadsUC.Execute(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("❌ failed to list leads")
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeStorage, "could not load leads")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
