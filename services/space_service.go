package services

import (
	"errors"
	"strings"

	"reserva-backend/config"
	"reserva-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSpaceNotFound = errors.New("space_not_found")

type SpaceService struct{}

func (s SpaceService) GetAll() ([]models.Space, error) {
	var spaces []models.Space
	err := config.DB.Find(&spaces).Error
	return spaces, err
}

func (s SpaceService) GetByID(id string) (models.Space, error) {
	var space models.Space
	err := config.DB.First(&space, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return space, ErrSpaceNotFound
	}
	return space, err
}

func (s SpaceService) Create(space *models.Space) error {
	if strings.TrimSpace(space.Name) == "" || strings.TrimSpace(space.Address) == "" {
		return errors.New("validation: space name and address are required")
	}
	if space.Capacity < 1 {
		return errors.New("validation: space capacity must be at least 1")
	}
	space.ID = uuid.NewString()
	if len(space.Images) == 0 {
		_ = space.SetImageList(nil)
	}
	return config.DB.Create(space).Error
}

func (s SpaceService) Update(id string, space *models.Space) error {
	var existing models.Space
	if err := config.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpaceNotFound
		}
		return err
	}
	if space.Capacity < 1 {
		return errors.New("validation: space capacity must be at least 1")
	}
	space.ID = existing.ID
	space.CreatedAt = existing.CreatedAt
	return config.DB.Save(space).Error
}

func (s SpaceService) Delete(id string) error {
	res := config.DB.Where("id = ?", id).Delete(&models.Space{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}
