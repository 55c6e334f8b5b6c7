package get_business_config

import (
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
)

const msgInternal = "Error al obtener configuración"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/business-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/business-config - Failed to get config: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
