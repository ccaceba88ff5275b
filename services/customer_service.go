package services

import (
	"errors"
	"fmt"
	"strings"

	"reserva-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer_not_found")

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// MigrateLegacyContacts materializes the pre-migration company/phone pair
// into a one-element contact list. It runs in-memory when a record is loaded
// for editing and never duplicates: a record that already has contacts is
// left alone. Returns whether anything changed.
func MigrateLegacyContacts(c *models.Customer) bool {
	if len(c.ContactList()) > 0 || strings.TrimSpace(c.Company) == "" {
		return false
	}
	_ = c.SetContactList([]models.ContactPerson{{
		ID:          uuid.NewString(),
		Name:        c.Company,
		RGPDConsent: true,
		Email:       "",
		Phone:       c.Phone,
	}})
	return true
}

func (s *CustomerService) List() ([]models.Customer, error) {
	var list []models.Customer
	if err := s.DB.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return list, nil
}

// GetByID loads a customer for editing, applying the legacy-contact
// normalization in-memory. The normalized form is only persisted by the next
// Update.
func (s *CustomerService) GetByID(id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.DB.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}
	MigrateLegacyContacts(&c)
	return &c, nil
}

func (s *CustomerService) Create(c *models.Customer) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return errors.New("validation: customer name and email are required")
	}
	c.ID = uuid.NewString()
	if c.Status == "" {
		c.Status = models.EntityActive
	}
	if len(c.Contacts) == 0 {
		_ = c.SetContactList(nil)
	}
	if len(c.Attachments) == 0 {
		_ = c.SetAttachmentList(nil)
	}
	if err := s.DB.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (s *CustomerService) Update(id string, c *models.Customer) (*models.Customer, error) {
	var existing models.Customer
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	// Once a contact list exists the legacy columns must not survive the
	// edit: they represented a single pre-migration contact.
	if len(c.ContactList()) > 0 {
		c.Company = ""
		c.Phone = ""
	}

	if err := s.DB.Save(c).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Delete(id string) error {
	// No cascade: bookings keep their customer_id and views resolve the
	// missing join target as "(unknown)".
	res := s.DB.Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// NameIndex maps customer id to display name for the free-text search.
func (s *CustomerService) NameIndex() (map[string]string, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for i := range list {
		names[list[i].ID] = list[i].Name
	}
	return names, nil
}
