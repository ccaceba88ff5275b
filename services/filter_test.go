package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reserva-backend/models"
)

func filterFixtures() ([]models.Booking, map[string]string) {
	bookings := []models.Booking{
		{
			ID:          "1",
			SpaceID:     "s1",
			CustomerID:  "c1",
			EventName:   "Conferência Anual",
			Responsible: "Carlos Santos",
			Status:      models.StatusConfirmed,
			StartDate:   time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			SpaceID:     "s2",
			CustomerID:  "c2",
			EventName:   "Workshop de Verão",
			Responsible: "Carlos Santos",
			Status:      models.StatusPending,
			StartDate:   time.Date(2024, 6, 11, 0, 1, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			SpaceID:     "s1",
			CustomerID:  "c1",
			EventName:   "Visita Técnica",
			Responsible: "Ana Oliveira",
			Status:      models.StatusVisit,
			StartDate:   time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC),
		},
	}
	names := map[string]string{
		"c1": "Ana Oliveira",
		"c2": "Associação Cultural do Bairro",
	}
	return bookings, names
}

func ids(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterSearchCoversEventCustomerAndResponsible(t *testing.T) {
	bookings, names := filterFixtures()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "matches customer name case-insensitively", search: "ana", want: []string{"1", "3"}},
		{name: "matches event name", search: "workshop", want: []string{"2"}},
		{name: "matches responsible", search: "carlos", want: []string{"1", "2"}},
		{name: "whitespace-only term matches everything", search: "   ", want: []string{"1", "2", "3"}},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BookingFilter{Search: tt.search}
			assert.Equal(t, tt.want, ids(f.Apply(bookings, names)))
		})
	}
}

func TestFilterCategory(t *testing.T) {
	bookings, names := filterFixtures()

	assert.Equal(t, []string{"3"}, ids(BookingFilter{Category: CategoryVisit}.Apply(bookings, names)))
	assert.Equal(t, []string{"1", "2"}, ids(BookingFilter{Category: CategoryProcess}.Apply(bookings, names)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(BookingFilter{Category: CategoryAll}.Apply(bookings, names)))
}

func TestFilterStatusAndSpace(t *testing.T) {
	bookings, names := filterFixtures()

	assert.Equal(t, []string{"2"}, ids(BookingFilter{Status: models.StatusPending}.Apply(bookings, names)))
	assert.Equal(t, []string{"1", "3"}, ids(BookingFilter{SpaceID: "s1"}.Apply(bookings, names)))

	// "all" sentinel behaves like unset.
	assert.Equal(t, []string{"1", "2", "3"}, ids(BookingFilter{Status: "all", SpaceID: "all"}.Apply(bookings, names)))
}

func TestFilterDateRangeInclusiveEndDay(t *testing.T) {
	bookings, names := filterFixtures()

	// End bound covers the whole of 2024-06-10: the 23:00 booking is in, the
	// next-day 00:01 booking is out.
	f := BookingFilter{DateFrom: "2024-06-10", DateTo: "2024-06-10"}
	assert.Equal(t, []string{"1"}, ids(f.Apply(bookings, names)))

	f = BookingFilter{DateFrom: "2024-06-01", DateTo: "2024-06-30"}
	assert.Equal(t, []string{"1", "2", "3"}, ids(f.Apply(bookings, names)))

	f = BookingFilter{DateFrom: "2024-06-11"}
	assert.Equal(t, []string{"2"}, ids(f.Apply(bookings, names)))
}

func TestFilterDimensionsCombineWithAND(t *testing.T) {
	bookings, names := filterFixtures()

	f := BookingFilter{
		Search:   "ana",
		Category: CategoryProcess,
		SpaceID:  "s1",
		DateFrom: "2024-06-10",
		DateTo:   "2024-06-10",
	}
	assert.Equal(t, []string{"1"}, ids(f.Apply(bookings, names)))

	// Tightening any one dimension drops the match.
	f.Status = models.StatusPending
	assert.Empty(t, f.Apply(bookings, names))
}

func TestFilterUnknownCustomerSearchesEmptyName(t *testing.T) {
	bookings, _ := filterFixtures()

	f := BookingFilter{Search: "conferência"}
	assert.Equal(t, []string{"1"}, ids(f.Apply(bookings, nil)))
}

func TestFilterResetAndIsZero(t *testing.T) {
	f := BookingFilter{Search: "x", Status: models.StatusPending, DateTo: "2024-06-10"}
	assert.False(t, f.IsZero())

	f.Reset()
	assert.True(t, f.IsZero())

	bookings, names := filterFixtures()
	assert.Equal(t, []string{"1", "2", "3"}, ids(f.Apply(bookings, names)))
}
