package block_date

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

const (
	msgInvalidRequestBody = "Datos inválidos"
	msgInternal           = "Error al bloquear la fecha"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocking.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates - Invalid input: date=%q, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Date blocked: date=%s", result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
