package clock

import "time"

// Clock источник текущего времени в часовом поясе бизнеса
type Clock struct {
	loc *time.Location
}

// New создает Clock; nil означает UTC
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

// Now текущее время в часовом поясе бизнеса
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location часовой пояс бизнеса
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Fixed часы, которые всегда показывают одно и то же время (для тестов)
type Fixed struct {
	At time.Time
}

func (f *Fixed) Now() time.Time {
	return f.At
}

func (f *Fixed) Location() *time.Location {
	return f.At.Location()
}
