package get_availability

import (
	getAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
	Blocked bool     `json:"blocked"`
	Reason  *string  `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailabilityResponse{
		Date:    resp.Date,
		Slots:   slots,
		Blocked: resp.Blocked,
		Reason:  resp.Reason,
	}
}
