package holiday

import "time"

// Holiday is a public holiday or company closure. Dates are unique.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Set indexes holidays by "YYYY-MM-DD".
type Set map[string]Holiday

func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date.Format("2006-01-02")] = h
	}
	return s
}

func (s Set) On(date time.Time) (Holiday, bool) {
	h, ok := s[date.Format("2006-01-02")]
	return h, ok
}
