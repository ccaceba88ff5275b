package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reserva-backend/models"
)

func TestMonthGridShape(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantLeading int
		wantDays    int
	}{
		{name: "january 2023 starts on sunday", year: 2023, month: time.January, wantLeading: 0, wantDays: 31},
		{name: "june 2024 starts on saturday", year: 2024, month: time.June, wantLeading: 6, wantDays: 30},
		{name: "leap february 2024", year: 2024, month: time.February, wantLeading: 4, wantDays: 29},
		{name: "non-leap february 2023", year: 2023, month: time.February, wantLeading: 3, wantDays: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := MonthGrid(tt.year, tt.month, nil, nil)

			assert.Len(t, cells, tt.wantLeading+tt.wantDays)
			for i := 0; i < tt.wantLeading; i++ {
				assert.Zero(t, cells[i].Day)
				assert.Empty(t, cells[i].Date)
			}
			assert.Equal(t, 1, cells[tt.wantLeading].Day)
			assert.Equal(t, tt.wantDays, cells[len(cells)-1].Day)

			first := time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, int(first.Weekday()), tt.wantLeading)
		})
	}
}

func TestMonthGridPlacesBookingsByStartDay(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "2", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)},
		{ID: "3", SpaceID: "s2", StartDate: time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)},
	}

	cells := MonthGrid(2024, time.June, bookings, nil)

	// June 2024 has 6 leading blanks; day N is at index 6+N-1.
	day10 := cells[6+9]
	assert.Equal(t, 10, day10.Day)
	assert.Equal(t, "2024-06-10", day10.Date)
	assert.Len(t, day10.Bookings, 2)
	assert.False(t, day10.Overflow)

	day11 := cells[6+10]
	assert.Len(t, day11.Bookings, 1)
	assert.Equal(t, "3", day11.Bookings[0].ID)
}

func TestMonthGridOverflow(t *testing.T) {
	var bookings []models.Booking
	for i := 0; i < DayCellDotLimit+1; i++ {
		bookings = append(bookings, models.Booking{
			ID:        string(rune('a' + i)),
			SpaceID:   "s1",
			StartDate: time.Date(2024, 6, 5, 9+i, 0, 0, 0, time.UTC),
		})
	}

	cells := MonthGrid(2024, time.June, bookings, nil)
	day5 := cells[6+4]

	assert.Len(t, day5.Bookings, DayCellDotLimit+1)
	assert.True(t, day5.Overflow)
}

func TestMonthGridSpaceScope(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "2", SpaceID: "s2", StartDate: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)},
	}

	all := MonthGrid(2024, time.June, bookings, nil)
	assert.Len(t, all[6+9].Bookings, 2)

	scoped := MonthGrid(2024, time.June, bookings, ScopeFromIDs([]string{"s1"}))
	assert.Len(t, scoped[6+9].Bookings, 1)
	assert.Equal(t, "1", scoped[6+9].Bookings[0].ID)

	none := MonthGrid(2024, time.June, bookings, ScopeFromIDs(nil))
	assert.Empty(t, none[6+9].Bookings)
}

func TestDayAgendaOrdering(t *testing.T) {
	bookings := []models.Booking{
		{ID: "late", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)},
		{ID: "early", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "tie-a", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{ID: "tie-b", SpaceID: "s1", StartDate: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{ID: "other-day", SpaceID: "s1", StartDate: time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)},
	}

	agenda := DayAgenda("2024-06-10", bookings, nil)

	ids := make([]string, 0, len(agenda))
	for _, b := range agenda {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"early", "tie-a", "tie-b", "late"}, ids)
}

func TestDayAgendaEmptyDay(t *testing.T) {
	agenda := DayAgenda("2024-06-10", nil, nil)
	assert.NotNil(t, agenda)
	assert.Empty(t, agenda)
}

func TestScopeToggle(t *testing.T) {
	scope := ScopeFromIDs([]string{"s1"})

	scope.Toggle("s2")
	assert.True(t, scope.Includes("s1"))
	assert.True(t, scope.Includes("s2"))

	scope.Toggle("s1")
	assert.False(t, scope.Includes("s1"))
	assert.True(t, scope.Includes("s2"))
}

func TestToggleAll(t *testing.T) {
	spaces := []models.Space{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}

	// Partial selection fills up to the full list.
	scope := ScopeFromIDs([]string{"s1"})
	scope = ToggleAll(scope, spaces)
	assert.Len(t, scope, 3)
	for _, sp := range spaces {
		assert.True(t, scope.Includes(sp.ID))
	}

	// A full selection empties.
	scope = ToggleAll(scope, spaces)
	assert.Empty(t, scope)
	assert.False(t, scope.Includes("s1"))
}

func TestNilScopeIncludesEverything(t *testing.T) {
	var scope SpaceScope
	assert.True(t, scope.Includes("anything"))
	assert.True(t, scope.Includes(""))
}
