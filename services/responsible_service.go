package services

import (
	"errors"

	"reserva-backend/config"
	"reserva-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrResponsibleNotFound = errors.New("responsible_not_found")

type ResponsibleService struct{}

func (s ResponsibleService) GetAll() ([]models.Responsible, error) {
	var list []models.Responsible
	err := config.DB.Find(&list).Error
	return list, err
}

func (s ResponsibleService) Create(r *models.Responsible) error {
	r.ID = uuid.NewString()
	return config.DB.Create(r).Error
}

func (s ResponsibleService) Update(id string, r *models.Responsible) error {
	var existing models.Responsible
	if err := config.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResponsibleNotFound
		}
		return err
	}
	r.ID = existing.ID
	// Renaming a responsible silently orphans historical bookings that
	// reference the old name. Known fragility, kept as-is.
	return config.DB.Save(r).Error
}

func (s ResponsibleService) Delete(id string) error {
	res := config.DB.Where("id = ?", id).Delete(&models.Responsible{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResponsibleNotFound
	}
	return nil
}
