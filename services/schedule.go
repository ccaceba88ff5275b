package services

import (
	"sort"
	"time"

	"reserva-backend/models"
)

// How many bookings a compact day cell shows before the overflow marker.
const DayCellDotLimit = 4

const dateLayout = "2006-01-02"

// DayCell is one cell of the month grid. Leading blank cells (before day 1)
// have Day == 0 and no date. Bookings always carries the full set for the
// day; Overflow only tells the renderer to add the "more" marker.
type DayCell struct {
	Day      int              `json:"day"`
	Date     string           `json:"date,omitempty"`
	Bookings []models.Booking `json:"bookings"`
	Overflow bool             `json:"overflow"`
}

// SpaceScope is the set of space ids included in calendar views. A nil scope
// includes every space (the default state).
type SpaceScope map[string]bool

// ScopeFromIDs builds a scope containing exactly the given ids. An empty
// (non-nil) input yields an empty scope that matches nothing.
func ScopeFromIDs(ids []string) SpaceScope {
	scope := make(SpaceScope, len(ids))
	for _, id := range ids {
		if id != "" {
			scope[id] = true
		}
	}
	return scope
}

func (s SpaceScope) Includes(spaceID string) bool {
	if s == nil {
		return true
	}
	return s[spaceID]
}

// Toggle adds or removes a single space from the scope.
func (s SpaceScope) Toggle(spaceID string) {
	if s[spaceID] {
		delete(s, spaceID)
	} else {
		s[spaceID] = true
	}
}

// ToggleAll implements the select-all control: if the scope currently equals
// the full space list it empties, otherwise it becomes the full list. The
// direction depends on current state, not a fixed "always select".
func ToggleAll(s SpaceScope, spaces []models.Space) SpaceScope {
	if len(s) == len(spaces) {
		return SpaceScope{}
	}
	next := make(SpaceScope, len(spaces))
	for _, sp := range spaces {
		next[sp.ID] = true
	}
	return next
}

// MonthGrid builds the calendar cells for one month: leading blanks equal to
// the weekday index of day 1 (Sunday = 0), then one cell per day. A booking
// lands in the cell matching the calendar-day portion of its start — two
// bookings starting at different hours of the same day share a cell.
func MonthGrid(year int, month time.Month, bookings []models.Booking, scope SpaceScope) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		cell := DayCell{Day: day, Date: date, Bookings: []models.Booking{}}
		for _, b := range bookings {
			if !scope.Includes(b.SpaceID) {
				continue
			}
			if b.StartDate.Format(dateLayout) == date {
				cell.Bookings = append(cell.Bookings, b)
			}
		}
		cell.Overflow = len(cell.Bookings) > DayCellDotLimit
		cells = append(cells, cell)
	}
	return cells
}

// DayAgenda returns the space-scoped bookings starting on the given calendar
// date, ascending by start time. The sort is stable: ties keep collection
// order.
func DayAgenda(date string, bookings []models.Booking, scope SpaceScope) []models.Booking {
	agenda := []models.Booking{}
	for _, b := range bookings {
		if scope.Includes(b.SpaceID) && b.StartDate.Format(dateLayout) == date {
			agenda = append(agenda, b)
		}
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].StartDate.Before(agenda[j].StartDate)
	})
	return agenda
}
