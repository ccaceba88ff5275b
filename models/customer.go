package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EntityActive   = "ativo"
	EntityInactive = "inativo"
)

// ContactPerson is one entry of a customer's contact list. Consent is a
// first-class attribute, not a role.
type ContactPerson struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RGPDConsent bool   `json:"rgpd_consent"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// Attachment is metadata only; file handling itself lives outside this
// service.
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Customer struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255" json:"email"`

	Contacts    datatypes.JSON `gorm:"column:contacts" json:"contacts"`
	Attachments datatypes.JSON `gorm:"column:attachments" json:"attachments,omitempty"`

	// Pre-migration records carried a single contact in these two columns.
	// They are materialized into Contacts on load-for-edit and cleared on
	// the first persisted edit that carries a contact list.
	Company string `gorm:"size:255" json:"company,omitempty"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`

	Status string `gorm:"size:16" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ContactList decodes the JSON contacts column. A missing or malformed
// column reads as an empty list.
func (c *Customer) ContactList() []ContactPerson {
	var list []ContactPerson
	if len(c.Contacts) == 0 {
		return list
	}
	_ = json.Unmarshal(c.Contacts, &list)
	return list
}

func (c *Customer) SetContactList(list []ContactPerson) error {
	if list == nil {
		list = []ContactPerson{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	c.Contacts = datatypes.JSON(raw)
	return nil
}

func (c *Customer) AttachmentList() []Attachment {
	var list []Attachment
	if len(c.Attachments) == 0 {
		return list
	}
	_ = json.Unmarshal(c.Attachments, &list)
	return list
}

func (c *Customer) SetAttachmentList(list []Attachment) error {
	if list == nil {
		list = []Attachment{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	c.Attachments = datatypes.JSON(raw)
	return nil
}
