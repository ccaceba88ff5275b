package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Space struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	Name          string `gorm:"size:255" json:"name"`
	Address       string `gorm:"type:text" json:"address"`
	GoogleMapLink string `gorm:"size:512;column:google_map_link" json:"googleMapLink"`
	Capacity      int    `json:"capacity"`
	Extras        string `gorm:"type:text" json:"extras"`

	// Ordered list of image URLs.
	Images datatypes.JSON `json:"images"`

	Description string `gorm:"type:text" json:"description"`

	// Active drives the "available"/"under maintenance" display. It does NOT
	// gate new bookings in the write path.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Space) ImageList() []string {
	var list []string
	if len(s.Images) == 0 {
		return list
	}
	_ = json.Unmarshal(s.Images, &list)
	return list
}

func (s *Space) SetImageList(list []string) error {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	s.Images = datatypes.JSON(raw)
	return nil
}
