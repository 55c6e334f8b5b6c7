package unblock_time_slot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/santilopez19/TurneroPremium/internal/service/blocking"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type stubService struct {
	date, at string
	err      error
}

func (s *stubService) UnblockTimeSlot(_ context.Context, date, at string) error {
	s.date, s.at = date, at
	return s.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unblocked", want: http.StatusNoContent},
		{name: "not blocked", err: blocking.ErrBlockNotFound, want: http.StatusNotFound},
		{name: "bad time", err: fmt.Errorf("%w: time", blocking.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "store failure", err: blocking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/api/admin/blocked-time-slots/{date}/{time}", NewHandler(svc, logger.NewNop()).Handle).
				Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/blocked-time-slots/2030-03-04/10:30", nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "2030-03-04", svc.date)
			assert.Equal(t, "10:30", svc.at)
		})
	}
}
