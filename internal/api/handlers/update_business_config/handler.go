package update_business_config

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/api/middleware"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig/models"
)

const (
	msgInvalidRequestBody = "Datos inválidos"
	msgInvalidConfig      = "Configuración inválida"
	msgInternal           = "Error al guardar configuración"
)

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

// Handle POST /api/admin/business-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/business-config - Missing admin")
		handlers.RespondUnauthorized(w)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/business-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessconfig.ErrInvalidInput):
			h.logger.Warn("POST /admin/business-config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("POST /admin/business-config - Failed to update config: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /admin/business-config - Config updated: by=%s", admin.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
