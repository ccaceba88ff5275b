package services

import (
	"time"

	"reserva-backend/models"
)

// ShouldExpire reports whether a booking's window has passed and its status
// must be rewritten to vencida. Cancelled and already-expired bookings are
// never touched, so re-running the sweep over them is a no-op.
func ShouldExpire(b *models.Booking, now time.Time) bool {
	if b.IsTerminal() {
		return false
	}
	return b.EndDate.Before(now)
}

// ApplyExpirations rewrites every lapsed booking in the slice to vencida and
// returns the ids that changed, in collection order.
func ApplyExpirations(bookings []models.Booking, now time.Time) []string {
	var changed []string
	for i := range bookings {
		if ShouldExpire(&bookings[i], now) {
			bookings[i].Status = models.StatusExpired
			changed = append(changed, bookings[i].ID)
		}
	}
	return changed
}
