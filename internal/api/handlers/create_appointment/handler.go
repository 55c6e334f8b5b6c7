package create_appointment

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	createAppointment "github.com/santilopez19/TurneroPremium/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Datos inválidos"
	msgSlotUnavailable    = "Horario no disponible"
	msgDailyLimit         = "Máximo 2 turnos por día por WhatsApp"
	msgInternal           = "Error al crear turno"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrDailyLimitExceeded):
			h.logger.Warn("POST /appointments - Daily limit exceeded: date=%s", req.Date)
			handlers.RespondConflict(w, msgDailyLimit)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, date_time=%s",
		result.ID, result.DateTime.Format("2006-01-02 15:04"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
