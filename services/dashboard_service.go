package services

import (
	"fmt"
	"sort"

	"reserva-backend/models"
	"reserva-backend/utils"

	"gorm.io/gorm"
)

// DashboardService derives the read-only dashboard and financial views from
// the store. Callers are expected to run the expiry sweep first so counts
// and totals never report a stale non-expired status.
type DashboardService struct {
	DB       *gorm.DB
	Bookings *BookingService
}

func NewDashboardService(db *gorm.DB, bookings *BookingService) *DashboardService {
	return &DashboardService{DB: db, Bookings: bookings}
}

func (s *DashboardService) KPIs() (*DashboardKPIs, error) {
	kpi := &DashboardKPIs{}

	if err := s.DB.Model(&models.Customer{}).Count(&kpi.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if err := s.DB.Model(&models.Space{}).Count(&kpi.TotalSpaces).Error; err != nil {
		return nil, fmt.Errorf("failed to count spaces: %w", err)
	}
	if err := s.DB.Model(&models.Responsible{}).Count(&kpi.TotalResponsibles).Error; err != nil {
		return nil, fmt.Errorf("failed to count responsibles: %w", err)
	}

	bookings, err := s.Bookings.List()
	if err != nil {
		return nil, err
	}
	kpi.TotalBookings = int64(len(bookings))
	kpi.BookingsByStatus = CountByStatus(bookings)
	kpi.BookingsByResponsible = CountByResponsible(bookings)
	return kpi, nil
}

// FinancialRow is one line of the confirmed-revenue detail table.
type FinancialRow struct {
	BookingID    string  `json:"bookingId"`
	EventName    string  `json:"eventName"`
	StartDate    string  `json:"startDate"`
	CustomerName string  `json:"customerName"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"priceDisplay"`
}

// FinancialSummary is the payload of the values view: guaranteed vs
// potential revenue plus the confirmed detail rows.
type FinancialSummary struct {
	ConfirmedTotal        float64        `json:"confirmedTotal"`
	PendingTotal          float64        `json:"pendingTotal"`
	ConfirmedTotalDisplay string         `json:"confirmedTotalDisplay"`
	PendingTotalDisplay   string         `json:"pendingTotalDisplay"`
	ConfirmedCount        int            `json:"confirmedCount"`
	PendingCount          int            `json:"pendingCount"`
	Confirmed             []FinancialRow `json:"confirmed"`
}

func (s *DashboardService) FinancialSummary(customerNames map[string]string) (*FinancialSummary, error) {
	bookings, err := s.Bookings.List()
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{Confirmed: []FinancialRow{}}
	summary.ConfirmedTotal, summary.PendingTotal = FinancialTotals(bookings)
	summary.ConfirmedTotalDisplay = utils.FormatEUR(summary.ConfirmedTotal)
	summary.PendingTotalDisplay = utils.FormatEUR(summary.PendingTotal)

	for i := range bookings {
		switch bookings[i].Status {
		case models.StatusPending:
			summary.PendingCount++
		case models.StatusConfirmed:
			summary.ConfirmedCount++
			name, ok := customerNames[bookings[i].CustomerID]
			if !ok {
				name = "Cliente Desconhecido"
			}
			summary.Confirmed = append(summary.Confirmed, FinancialRow{
				BookingID:    bookings[i].ID,
				EventName:    bookings[i].EventName,
				StartDate:    bookings[i].StartDate.Format(dateLayout),
				CustomerName: name,
				Price:        bookings[i].Price,
				PriceDisplay: utils.FormatEUR(bookings[i].Price),
			})
		}
	}

	// detail table shows most recent events first
	sort.SliceStable(summary.Confirmed, func(i, j int) bool {
		return summary.Confirmed[i].StartDate > summary.Confirmed[j].StartDate
	})
	return summary, nil
}
