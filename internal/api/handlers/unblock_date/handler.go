package unblock_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
)

const (
	msgInvalidDate = "Fecha inválida, se espera YYYY-MM-DD"
	msgNotFound    = "La fecha no está bloqueada"
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

// Handle DELETE /api/admin/blocked-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.UnblockDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, blocking.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, blocking.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Block not found: date=%s", date)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{date} - Failed to unblock: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{date} - Date unblocked: date=%s", date)
	handlers.RespondNoContent(w)
}
