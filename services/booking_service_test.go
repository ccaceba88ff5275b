package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reserva-backend/models"
)

func TestNextBookingID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty collection starts at 1", ids: nil, want: "1"},
		{name: "continues from max", ids: []string{"1", "2", "3"}, want: "4"},
		{name: "gaps don't reuse ids", ids: []string{"1", "7", "3"}, want: "8"},
		{name: "non-numeric ids are skipped", ids: []string{"abc", "5", "x9"}, want: "6"},
		{name: "fully non-numeric starts over at 1", ids: []string{"abc", "def"}, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextBookingID(tt.ids))
		})
	}
}

func TestNormalizeBookingFreeCessionZeroesPrice(t *testing.T) {
	b := models.Booking{Type: models.TypeFree, Price: 250}
	NormalizeBooking(&b)
	assert.Zero(t, b.Price)

	paid := models.Booking{Type: models.TypePaid, Price: 250}
	NormalizeBooking(&paid)
	assert.Equal(t, 250.0, paid.Price)
}

func TestNormalizeBookingDefaultsApproval(t *testing.T) {
	b := models.Booking{Type: models.TypePaid}
	NormalizeBooking(&b)
	assert.Equal(t, models.ApprovalPending, b.ApprovalStatus)

	b = models.Booking{Type: models.TypePaid, ApprovalStatus: models.ApprovalAuthorized}
	NormalizeBooking(&b)
	assert.Equal(t, models.ApprovalAuthorized, b.ApprovalStatus)
}

func TestValidateBooking(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	valid := models.Booking{
		SpaceID:     "s1",
		CustomerID:  "c1",
		Responsible: "Carlos Santos",
		EventName:   "Conferência Anual",
		StartDate:   start,
		EndDate:     start.Add(4 * time.Hour),
	}
	assert.NoError(t, validateBooking(&valid))

	tests := []struct {
		name   string
		mutate func(b *models.Booking)
	}{
		{name: "missing space", mutate: func(b *models.Booking) { b.SpaceID = " " }},
		{name: "missing customer", mutate: func(b *models.Booking) { b.CustomerID = "" }},
		{name: "missing responsible", mutate: func(b *models.Booking) { b.Responsible = "" }},
		{name: "missing event name", mutate: func(b *models.Booking) { b.EventName = "  " }},
		{name: "missing start", mutate: func(b *models.Booking) { b.StartDate = time.Time{} }},
		{name: "missing end", mutate: func(b *models.Booking) { b.EndDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := validateBooking(&b)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validation:")
		})
	}
}
