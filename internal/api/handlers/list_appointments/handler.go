package list_appointments

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

const (
	msgInvalidRange = "Rango de fechas inválido, se espera YYYY-MM-DD"
	msgInternal     = "Error al cargar turnos"
)

type Handler struct {
	service AppointmentLister
	logger  Logger
}

func NewHandler(service AppointmentLister, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/appointments?from=&to=
// Ответ - массив записей по возрастанию даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		From:   handlers.OptionalQuery(r, "from"),
		To:     handlers.OptionalQuery(r, "to"),
		Status: handlers.OptionalQuery(r, "status"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
