package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// input нормализованный запрос
type input struct {
	firstName string
	lastName  string
	phone     string
	service   string
	date      time.Time
	at        types.TimeString
}

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request, loc *time.Location) (*input, error) {
	in := &input{
		firstName: strings.TrimSpace(req.FirstName),
		lastName:  strings.TrimSpace(req.LastName),
		phone:     domain.NormalizePhone(req.Phone),
		service:   strings.TrimSpace(req.ServiceDescriptor),
	}

	if in.firstName == "" || utf8.RuneCountInString(in.firstName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: firstName is required (max %d chars)", ErrInvalidInput, domain.MaxNameLength)
	}

	if in.lastName == "" || utf8.RuneCountInString(in.lastName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: lastName is required (max %d chars)", ErrInvalidInput, domain.MaxNameLength)
	}

	if !domain.IsValidPhone(in.phone) {
		return nil, fmt.Errorf("%w: phone must have %d-%d digits", ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if n := utf8.RuneCountInString(in.service); n < domain.MinServiceDescriptorLength || n > domain.MaxServiceDescriptorLength {
		return nil, fmt.Errorf("%w: serviceDescriptor must be %d-%d chars",
			ErrInvalidInput, domain.MinServiceDescriptorLength, domain.MaxServiceDescriptorLength)
	}

	date, err := domain.ParseDate(strings.TrimSpace(req.Date), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	in.date = date

	at, err := types.NewTimeStringFromString(req.Time)
	if err != nil || len(strings.TrimSpace(req.Time)) != len(domain.TimeFormat) {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	in.at = at

	return in, nil
}

// isOffered проверяет, что слот есть среди свободных
func isOffered(slots []types.TimeString, at types.TimeString) bool {
	for _, s := range slots {
		if s == at {
			return true
		}
	}
	return false
}

// lowestFreeSeq наименьший номер места в 1..limit, не занятый taken
// Возвращает 0, если все места заняты
func lowestFreeSeq(taken []int, limit int) int {
	used := make(map[int]bool, len(taken))
	for _, seq := range taken {
		used[seq] = true
	}
	for seq := 1; seq <= limit; seq++ {
		if !used[seq] {
			return seq
		}
	}
	return 0
}
