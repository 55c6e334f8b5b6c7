package archive_appointments

import "time"

// Response итог архивации
type Response struct {
	Archived int64     // Сколько записей переведено в done
	Before   time.Time // Граница: начало текущего дня в часовом поясе бизнеса
}
