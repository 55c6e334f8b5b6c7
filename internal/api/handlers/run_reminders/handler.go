package run_reminders

import (
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
)

const msgInternal = "Error al enviar recordatorios"

type Handler struct {
	useCase SendRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/run-reminders?key= и POST /api/admin/run-reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("%s %s - Failed to run reminders: error=%v", r.Method, r.URL.Path, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.logger.Info("%s %s - Reminders run: found=%d, sent=%d, failed=%d",
		r.Method, r.URL.Path, result.Found, result.Sent, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
