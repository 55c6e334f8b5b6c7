package get_admin_availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	getAdminAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_admin_availability"
)

func TestFromUseCaseResponse_Shape(t *testing.T) {
	resp := FromUseCaseResponse(&getAdminAvailability.Response{Days: []getAdminAvailability.DaySummary{{
		Date:         "2030-03-04",
		Slots: []domain.SlotOccupancy{
			{Time: "09:00", Booked: 1, Capacity: 2},
			{Time: "10:00", Booked: 2, Capacity: 2},
			{Time: "11:00", Capacity: 2, Blocked: true},
		},
		TotalSlots:   3,
		BookedSlots:  2,
		BlockedSlots: 1,
	}}})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[{"date":"2030-03-04","blocked":false,
		"slots":[
			{"time":"09:00","booked":1,"capacity":2,"free":1,"blocked":false,"available":true},
			{"time":"10:00","booked":2,"capacity":2,"free":0,"blocked":false,"available":false},
			{"time":"11:00","booked":0,"capacity":2,"free":2,"blocked":true,"available":false}],
		"totalSlots":3,"blockedSlots":1,"bookedSlots":2}]}`, string(raw))
}
