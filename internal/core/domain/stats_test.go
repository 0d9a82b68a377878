package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummarize_DueToday(t *testing.T) {
	today := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	clients := []*Client{
		{ARTNumber: "ART-1", Status: StatusActive, NextPickup: date(2024, 6, 1)},
		{ARTNumber: "ART-2", Status: StatusActive, NextPickup: date(2024, 6, 8)},
	}

	s := Summarize(today, clients)
	if s.DueToday != 1 {
		t.Fatalf("expected 1 due today, got %d", s.DueToday)
	}
	if s.Overdue != 0 {
		t.Fatalf("expected 0 overdue, got %d", s.Overdue)
	}
}

func TestSummarize_Overdue(t *testing.T) {
	today := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	clients := []*Client{
		{ARTNumber: "ART-1", Status: StatusActive, NextPickup: date(2020, 1, 1)},
		{ARTNumber: "ART-2", Status: StatusActive, NextPickup: date(2024, 5, 31)},
		{ARTNumber: "ART-3", Status: StatusActive, NextPickup: date(2024, 6, 2)},
	}

	s := Summarize(today, clients)
	if s.Overdue != 2 {
		t.Fatalf("expected 2 overdue, got %d", s.Overdue)
	}
	if s.DueToday != 0 {
		t.Fatalf("expected 0 due today, got %d", s.DueToday)
	}
}

func TestSummarize_DueTodayIsNotOverdue(t *testing.T) {
	// even late in the day, a client due today must not count as overdue
	today := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	clients := []*Client{
		{ARTNumber: "ART-1", Status: StatusActive, NextPickup: date(2024, 6, 1)},
	}

	s := Summarize(today, clients)
	if s.DueToday != 1 || s.Overdue != 0 {
		t.Fatalf("expected dueToday=1 overdue=0, got dueToday=%d overdue=%d", s.DueToday, s.Overdue)
	}
}

func TestSummarize_NilPickupExcluded(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clients := []*Client{
		{ARTNumber: "ART-1", Status: StatusActive},
		{ARTNumber: "ART-2", Status: StatusTransferred},
	}

	s := Summarize(today, clients)
	if s.DueToday != 0 || s.Overdue != 0 {
		t.Fatalf("clients without pickup must be excluded, got dueToday=%d overdue=%d", s.DueToday, s.Overdue)
	}
	if s.Total != 2 {
		t.Fatalf("expected total 2, got %d", s.Total)
	}
	if s.Active != 1 {
		t.Fatalf("expected 1 active, got %d", s.Active)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(time.Now(), nil)
	if s.Total != 0 || s.DueToday != 0 || s.Overdue != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}
