package health

import (
	"net/http"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
)

// Response тело ответа проверки живости
type Response struct {
	OK bool `json:"ok"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{OK: true})
}
