package handler

import (
	"time"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// --- Service result → HTTP response ---

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		ARTNumber:  c.ARTNumber,
		FullName:   c.FullName,
		Age:        c.Age,
		Address:    c.Address,
		Status:     string(c.Status),
		FacilityID: c.FacilityID,
	}
	if c.NextPickup != nil {
		formatted := c.NextPickup.UTC().Format(dateLayout)
		resp.NextPickup = &formatted
	}
	return resp
}

func toClientListResponse(clients []*domain.Client) []clientResponse {
	// Always a JSON array on the wire, never null.
	out := make([]clientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}

func toStatsResponse(s domain.Stats) statsResponse {
	return statsResponse{
		Total:    s.Total,
		Active:   s.Active,
		DueToday: s.DueToday,
		Overdue:  s.Overdue,
	}
}

// parseDate converts an optional YYYY-MM-DD string into a *time.Time.
// Validation has already guaranteed the format.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
