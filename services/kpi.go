package services

import (
	"reserva-backend/models"
)

// DashboardKPIs mirrors the dashboard payload the frontend consumes.
type DashboardKPIs struct {
	TotalCustomers        int64          `json:"totalCustomers"`
	TotalSpaces           int64          `json:"totalSpaces"`
	TotalBookings         int64          `json:"totalBookings"`
	TotalResponsibles     int64          `json:"totalResponsibles"`
	BookingsByStatus      map[string]int `json:"bookingsByStatus"`
	BookingsByResponsible map[string]int `json:"bookingsByResponsible"`
}

// CountByStatus buckets bookings by lifecycle status. All five status keys
// are always present, zero-filled when absent; unknown statuses are ignored.
func CountByStatus(bookings []models.Booking) map[string]int {
	counts := make(map[string]int, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		counts[s] = 0
	}
	for i := range bookings {
		if _, ok := counts[bookings[i].Status]; ok {
			counts[bookings[i].Status]++
		}
	}
	return counts
}

// CountByResponsible buckets bookings by the raw responsible name. No
// normalization: differing casing or whitespace yields distinct buckets,
// matching the denormalized name reference. Empty names are skipped.
func CountByResponsible(bookings []models.Booking) map[string]int {
	counts := map[string]int{}
	for i := range bookings {
		if name := bookings[i].Responsible; name != "" {
			counts[name]++
		}
	}
	return counts
}

// FinancialTotals sums price over confirmed bookings (guaranteed revenue)
// and, separately, over pending ones (potential revenue). Free-cession
// bookings already carry price 0 so they need no special case here.
func FinancialTotals(bookings []models.Booking) (confirmed, pending float64) {
	for i := range bookings {
		switch bookings[i].Status {
		case models.StatusConfirmed:
			confirmed += bookings[i].Price
		case models.StatusPending:
			pending += bookings[i].Price
		}
	}
	return confirmed, pending
}
