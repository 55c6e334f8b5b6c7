package get_admin_availability

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	getAdminAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_admin_availability"
)

const (
	msgInvalidRange = "Rango de fechas inválido (máximo 62 días)"
	msgInternal     = "Error al obtener disponibilidad"
)

type Handler struct {
	useCase AdminAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AdminAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/admin/availability?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAdminAvailability.Request{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAdminAvailability.ErrInvalidRange):
			h.logger.Warn("GET /admin/availability - Invalid range: from=%q, to=%q", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/availability - Failed to build overview: from=%s, to=%s, error=%v",
				req.From, req.To, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
