package export_appointments

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	fileName        = "turnos.xlsx"

	msgInvalidRange = "Rango de fechas inválido, se espera YYYY-MM-DD"
	msgInternal     = "Error al exportar turnos"
)

type Handler struct {
	service AppointmentExporter
	logger  Logger
}

func NewHandler(service AppointmentExporter, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/appointments/export?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		From:   handlers.OptionalQuery(r, "from"),
		To:     handlers.OptionalQuery(r, "to"),
		Status: handlers.OptionalQuery(r, "status"),
	}

	// Файл собирается целиком до записи заголовков, чтобы ошибка не оборвала ответ на середине
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), req, &buf); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments/export - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/appointments/export - Failed to export: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/appointments/export - Failed to write response: %v", err)
	}
}
