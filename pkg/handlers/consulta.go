package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/apperrors"
	"github.com/bocado-labs/consulta-engine/pkg/catalog"
	"github.com/bocado-labs/consulta-engine/pkg/services"
)

// ConsultaRequest is the body of POST /consulta.
type ConsultaRequest struct {
	Question string `json:"question"`
}

// ConsultaResponse is the wire shape of an answered question.
type ConsultaResponse struct {
	OriginalQuestion string         `json:"original_question"`
	SQLQuery         string         `json:"sql_query"`
	Results          map[string]any `json:"results"`
	Status           string         `json:"status"`
}

// CatalogEntry is one row of GET /consultas.
type CatalogEntry struct {
	ID          string `json:"id"`
	Pregunta    string `json:"pregunta"`
	Descripcion string `json:"descripcion"`
}

// ConsultaHandler handles question answering and catalog listing.
type ConsultaHandler struct {
	service services.AnswerService
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewConsultaHandler creates a ConsultaHandler backed by the given pipeline.
func NewConsultaHandler(service services.AnswerService, cat *catalog.Catalog, logger *zap.Logger) *ConsultaHandler {
	return &ConsultaHandler{
		service: service,
		catalog: cat,
		logger:  logger.Named("consulta_handler"),
	}
}

// RegisterRoutes registers the consulta routes on the given mux.
func (h *ConsultaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /consulta", h.Answer)
	mux.HandleFunc("GET /consultas", h.ListCatalog)
}

// Answer handles POST /consulta requests.
func (h *ConsultaHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req ConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	answer, err := h.service.Answer(r.Context(), req.Question)
	if err != nil {
		h.writeAnswerError(w, err)
		return
	}

	resp := ConsultaResponse{
		OriginalQuestion: answer.Question,
		SQLQuery:         answer.SQLQuery,
		Results:          answer.Results,
		Status:           answer.Status,
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode consulta response", zap.Error(err))
	}
}

// ListCatalog handles GET /consultas requests.
func (h *ConsultaHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.All()
	out := make([]CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntry{
			ID:          e.ID,
			Pregunta:    e.Question,
			Descripcion: e.Description,
		})
	}

	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode catalog response", zap.Error(err))
	}
}

// writeAnswerError maps pipeline errors to HTTP statuses. Client mistakes
// (empty question, unmatched question, injection patterns) are 400; anything
// else, including LLM generation failures, is 500.
func (h *ConsultaHandler) writeAnswerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyQuestion),
		errors.Is(err, apperrors.ErrNoMatch),
		errors.Is(err, apperrors.ErrUnsafeQuestion):
		_ = ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("error en el pipeline de consulta", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "Error al procesar la consulta: "+err.Error())
	}
}
