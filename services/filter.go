package services

import (
	"strings"
	"time"

	"reserva-backend/models"
)

// Category values for the process-vs-visit filter dimension.
const (
	CategoryAll     = "all"
	CategoryProcess = "processo"
	CategoryVisit   = "visita"
)

// BookingFilter is the compound predicate shared by the list views. Every
// dimension defaults to match-everything when unset; dimensions combine with
// AND. Date bounds are calendar dates ("2006-01-02"); DateTo is inclusive of
// the whole end day.
type BookingFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	SpaceID  string `form:"space"`
	DateFrom string `form:"from"`
	DateTo   string `form:"to"`
}

// Reset clears every dimension in one operation.
func (f *BookingFilter) Reset() { *f = BookingFilter{} }

// IsZero reports whether no dimension is set.
func (f BookingFilter) IsZero() bool { return f == BookingFilter{} }

// Apply filters the collection. customerNames resolves customer ids to
// display names for the free-text search; a missing entry simply contributes
// an empty string to the searched text.
func (f BookingFilter) Apply(bookings []models.Booking, customerNames map[string]string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if f.Matches(&bookings[i], customerNames) {
			out = append(out, bookings[i])
		}
	}
	return out
}

// Matches evaluates the predicate against one booking.
func (f BookingFilter) Matches(b *models.Booking, customerNames map[string]string) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		haystack := strings.ToLower(b.EventName + " " + customerNames[b.CustomerID] + " " + b.Responsible)
		if !strings.Contains(haystack, term) {
			return false
		}
	}

	switch f.Category {
	case "", CategoryAll:
	case CategoryVisit:
		if !b.IsVisit() {
			return false
		}
	case CategoryProcess:
		if b.IsVisit() {
			return false
		}
	}

	if f.Status != "" && f.Status != CategoryAll && b.Status != f.Status {
		return false
	}

	if f.SpaceID != "" && f.SpaceID != CategoryAll && b.SpaceID != f.SpaceID {
		return false
	}

	if f.DateFrom != "" {
		if from, err := time.Parse(dateLayout, f.DateFrom); err == nil && b.StartDate.Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		if to, err := time.Parse(dateLayout, f.DateTo); err == nil {
			// include the whole end day
			end := to.Add(24*time.Hour - time.Millisecond)
			if b.StartDate.After(end) {
				return false
			}
		}
	}

	return true
}
