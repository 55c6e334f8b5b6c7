package list_blocks

import (
	"errors"
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

const (
	msgInvalidRange = "Rango de fechas inválido, se espera YYYY-MM-DD"
	msgInternal     = "Error al obtener bloqueos"
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

// Handle GET /api/admin/blocks?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBlocksRequest{
		From: handlers.OptionalQuery(r, "from"),
		To:   handlers.OptionalQuery(r, "to"),
	}

	result, err := h.service.ListBlocks(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blocking.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocks - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/blocks - Failed to list blocks: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
