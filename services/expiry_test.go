package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reserva-backend/models"
)

func TestShouldExpire(t *testing.T) {
	now := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status string
		end    time.Time
		want   bool
	}{
		{
			name:   "confirmed booking past its end lapses",
			status: models.StatusConfirmed,
			end:    time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "pending booking past its end lapses",
			status: models.StatusPending,
			end:    time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "visit past its end lapses",
			status: models.StatusVisit,
			end:    time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "cancelled booking is never touched",
			status: models.StatusCancelled,
			end:    time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "already expired booking is never touched",
			status: models.StatusExpired,
			end:    time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "booking ending exactly now is still live",
			status: models.StatusConfirmed,
			end:    now,
			want:   false,
		},
		{
			name:   "future booking is still live",
			status: models.StatusConfirmed,
			end:    now.Add(time.Hour),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Booking{ID: "1", Status: tt.status, EndDate: tt.end}
			assert.Equal(t, tt.want, ShouldExpire(&b, now))
		})
	}
}

func TestApplyExpirations(t *testing.T) {
	now := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	past := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	bookings := []models.Booking{
		{ID: "1", Status: models.StatusConfirmed, EndDate: past},
		{ID: "2", Status: models.StatusCancelled, EndDate: past},
		{ID: "3", Status: models.StatusPending, EndDate: future},
		{ID: "4", Status: models.StatusPending, EndDate: past},
	}

	changed := ApplyExpirations(bookings, now)

	assert.Equal(t, []string{"1", "4"}, changed)
	assert.Equal(t, models.StatusExpired, bookings[0].Status)
	assert.Equal(t, models.StatusCancelled, bookings[1].Status)
	assert.Equal(t, models.StatusPending, bookings[2].Status)
	assert.Equal(t, models.StatusExpired, bookings[3].Status)
}

func TestApplyExpirationsIdempotent(t *testing.T) {
	now := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ID: "1", Status: models.StatusConfirmed, EndDate: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	first := ApplyExpirations(bookings, now)
	assert.Equal(t, []string{"1"}, first)

	second := ApplyExpirations(bookings, now)
	assert.Empty(t, second)
	assert.Equal(t, models.StatusExpired, bookings[0].Status)
}
