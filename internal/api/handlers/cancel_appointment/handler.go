package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
)

const msgInvalidLink = "Enlace inválido"

type Handler struct {
	service AppointmentCanceler
	logger  Logger
}

func NewHandler(service AppointmentCanceler, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/appointments/cancel/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.CancelByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/cancel/{token} - Unknown token")
			handlers.RespondNotFound(w, msgInvalidLink)

		default:
			h.logger.Error("POST /appointments/cancel/{token} - Failed to cancel appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel/{token} - Appointment canceled: id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
