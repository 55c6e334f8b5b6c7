package mark_ready

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/api/middleware"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
)

const (
	msgNotFound  = "Turno no encontrado"
	msgNotActive = "El turno está cancelado o ya finalizó"
)

type Handler struct {
	service ReadyMarker
	logger  Logger
}

func NewHandler(service ReadyMarker, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/appointments/{id}/ready
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Администратор кладется в контекст middleware Auth
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/appointments/{id}/ready - Missing admin")
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.MarkReady(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /admin/appointments/{id}/ready - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAppointmentNotActive):
			h.logger.Warn("POST /admin/appointments/{id}/ready - Appointment not active: id=%s", id)
			handlers.RespondConflict(w, msgNotActive)

		default:
			h.logger.Error("POST /admin/appointments/{id}/ready - Failed to mark ready: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/appointments/{id}/ready - Appointment ready: id=%s, by=%s", id, admin.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
