package get_appointment_by_token

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
)

const msgInvalidLink = "Enlace inválido"

type Handler struct {
	service AppointmentGetter
	logger  Logger
}

func NewHandler(service AppointmentGetter, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments/cancel/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/cancel/{token} - Unknown token")
			handlers.RespondNotFound(w, msgInvalidLink)

		default:
			h.logger.Error("GET /appointments/cancel/{token} - Failed to get appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/cancel/{token} - Appointment fetched: id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
