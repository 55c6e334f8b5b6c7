package unblock_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
)

const (
	msgInvalidSlot = "Fecha u horario inválido"
	msgNotFound    = "El horario no está bloqueado"
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

// Handle DELETE /api/admin/blocked-time-slots/{date}/{time}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, at := vars["date"], vars["time"]

	if err := h.service.UnblockTimeSlot(r.Context(), date, at); err != nil {
		switch {
		case errors.Is(err, blocking.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-time-slots - Invalid slot: date=%q, time=%q", date, at)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, blocking.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocked-time-slots - Block not found: date=%s, time=%s", date, at)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-time-slots - Failed to unblock: date=%s, time=%s, error=%v",
				date, at, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-time-slots - Slot unblocked: date=%s, time=%s", date, at)
	handlers.RespondNoContent(w)
}
