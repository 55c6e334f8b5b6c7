package domain

import (
	"time"

	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// BlockedDate день, в который запись закрыта целиком
// Снятие блокировки выставляет Active=false, строка остается для истории
type BlockedDate struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Reason    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedTimeSlot один закрытый слот в конкретный день
type BlockedTimeSlot struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Time      types.TimeString
	Reason    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedTimesSet множество заблокированных времен одного дня
func BlockedTimesSet(slots []*BlockedTimeSlot) map[types.TimeString]bool {
	set := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		if s.Active {
			set[s.Time] = true
		}
	}
	return set
}
