package block_time_slot

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

const (
	msgInvalidRequestBody = "Datos inválidos"
	msgInternal           = "Error al bloquear el horario"
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

// Handle POST /api/admin/blocked-time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BlockTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockTimeSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocking.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-time-slots - Invalid input: date=%q, time=%q, error=%v",
				req.Date, req.Time, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/blocked-time-slots - Failed to block slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-time-slots - Slot blocked: date=%s, time=%s", result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, result)
}
