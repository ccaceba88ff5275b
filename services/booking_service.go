// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"reserva-backend/models"
	"reserva-backend/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking_not_found")

// BookingService wraps *gorm.DB and owns the booking lifecycle: CRUD, the
// pricing rule for free cessions, and the advisory expiry sweep.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// NextBookingID picks the next sequential decimal id from the ids already in
// the collection. Ids that don't parse as numbers are skipped; an empty or
// fully non-numeric collection starts over at "1".
func NextBookingID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// NormalizeBooking enforces the save-time rules: a gratuita booking never
// carries a price, and a missing approval annotation starts as pendente.
func NormalizeBooking(b *models.Booking) {
	if b.Type == models.TypeFree {
		b.Price = 0
	}
	if b.ApprovalStatus == "" {
		b.ApprovalStatus = models.ApprovalPending
	}
}

func validateBooking(b *models.Booking) error {
	switch {
	case strings.TrimSpace(b.SpaceID) == "":
		return errors.New("validation: space_id is required")
	case strings.TrimSpace(b.CustomerID) == "":
		return errors.New("validation: customer_id is required")
	case strings.TrimSpace(b.Responsible) == "":
		return errors.New("validation: responsible is required")
	case strings.TrimSpace(b.EventName) == "":
		return errors.New("validation: event_name is required")
	case b.StartDate.IsZero() || b.EndDate.IsZero():
		return errors.New("validation: start_date and end_date are required")
	}
	return nil
}

// List returns every booking, newest registration first.
func (s *BookingService) List() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &b, nil
}

// Create assigns the next sequential id and persists the booking. Id
// allocation and insert run in one transaction so two creates can't race the
// same id.
func (s *BookingService) Create(b *models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	NormalizeBooking(b)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Booking{}).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to allocate booking id: %w", err)
		}
		b.ID = NextBookingID(ids)

		if err := tx.Create(b).Error; err != nil {
			var dup *mysql.MySQLError
			if errors.As(err, &dup) && dup.Number == 1062 {
				return fmt.Errorf("booking id %s already taken: %w", b.ID, err)
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

// Update is a full-record replace by id. Status moves are deliberately
// unrestricted — including out of vencida or cancelada — because this is the
// manual correction path. When the edit switches the booking to confirmada a
// best-effort confirmation email goes to the event contact.
func (s *BookingService) Update(id string, b *models.Booking) (*models.Booking, error) {
	var existing models.Booking
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	// A payload that omits the lifecycle fields keeps the stored values;
	// a blank status would fall outside every KPI bucket and category.
	if b.Status == "" {
		b.Status = existing.Status
	}
	if b.Type == "" {
		b.Type = existing.Type
	}
	if err := validateBooking(b); err != nil {
		return nil, err
	}
	NormalizeBooking(b)

	if err := s.DB.Save(b).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if existing.Status != models.StatusConfirmed && b.Status == models.StatusConfirmed && b.ContactEmail != "" {
		if mailErr := utils.SendBookingConfirmationEmail(
			b.ContactEmail, b.ContactName, b.EventName, b.ID,
			b.StartDate, b.EndDate, utils.FormatEUR(b.Price),
		); mailErr != nil {
			log.Printf("warning: confirmation email for booking %s failed: %v", b.ID, mailErr)
		}
	}

	return b, nil
}

func (s *BookingService) Delete(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SweepExpirations rewrites every lapsed booking to vencida and persists the
// change so it is visible to every subsequent reader. Each record persists
// individually; failures are logged and skipped — the sweep is advisory and
// simply re-runs on the next load.
func (s *BookingService) SweepExpirations() error {
	var list []models.Booking
	if err := s.DB.Find(&list).Error; err != nil {
		return fmt.Errorf("failed to load bookings for expiry sweep: %w", err)
	}

	now := time.Now()
	for _, id := range ApplyExpirations(list, now) {
		if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).
			Update("status", models.StatusExpired).Error; err != nil {
			log.Printf("warning: expiry sweep could not persist booking %s: %v", id, err)
		}
	}
	return nil
}
