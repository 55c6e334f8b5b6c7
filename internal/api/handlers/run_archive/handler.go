package run_archive

import (
	"net/http"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
)

const msgInternal = "Error al archivar turnos"

// RunArchiveResponse HTTP response model
type RunArchiveResponse struct {
	Archived int64     `json:"archived"`
	Before   time.Time `json:"before"`
}

type Handler struct {
	useCase ArchiveUseCase
	logger  Logger
}

func NewHandler(useCase ArchiveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/run-archive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/run-archive - Failed to archive: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.logger.Info("POST /admin/run-archive - Archived: count=%d", result.Archived)
	handlers.RespondJSON(w, http.StatusOK, RunArchiveResponse{
		Archived: result.Archived,
		Before:   result.Before,
	})
}
