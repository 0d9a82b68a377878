package domain

import "time"

// Stats summarizes a client list against a reference date.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	DueToday int `json:"dueToday"`
	Overdue  int `json:"overdue"`
}

// Summarize is the single authoritative due/overdue computation.
// A client counts as due today when its next pickup falls on today's date,
// and as overdue when the pickup date is strictly before today. Clients
// without a scheduled pickup are excluded from both counts.
func Summarize(today time.Time, clients []*Client) Stats {
	ty, tm, td := today.Date()
	ref := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	var s Stats
	s.Total = len(clients)
	for _, c := range clients {
		if c.Status == StatusActive {
			s.Active++
		}
		if c.NextPickup == nil {
			continue
		}
		py, pm, pd := c.NextPickup.Date()
		pickup := time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC)
		switch {
		case pickup.Equal(ref):
			s.DueToday++
		case pickup.Before(ref):
			s.Overdue++
		}
	}
	return s
}
