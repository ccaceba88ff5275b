package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reserva-backend/models"
)

func TestMigrateLegacyContactsMaterializesCompanyAndPhone(t *testing.T) {
	c := models.Customer{
		Name:    "Santa Casa da Misericórdia de Lisboa",
		Company: "SCML",
		Phone:   "+351 213 235 000",
	}

	changed := MigrateLegacyContacts(&c)
	assert.True(t, changed)

	contacts := c.ContactList()
	assert.Len(t, contacts, 1)
	assert.Equal(t, "SCML", contacts[0].Name)
	assert.Equal(t, "+351 213 235 000", contacts[0].Phone)
	assert.True(t, contacts[0].RGPDConsent)
	assert.NotEmpty(t, contacts[0].ID)

	// The legacy columns stay in place until the next persisted edit.
	assert.Equal(t, "SCML", c.Company)
}

func TestMigrateLegacyContactsSkipsExistingContacts(t *testing.T) {
	c := models.Customer{Company: "SCML", Phone: "+351 213 235 000"}
	err := c.SetContactList([]models.ContactPerson{
		{ID: "x", Name: "Maria Ferreira", RGPDConsent: true},
	})
	assert.NoError(t, err)

	changed := MigrateLegacyContacts(&c)
	assert.False(t, changed)

	contacts := c.ContactList()
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Maria Ferreira", contacts[0].Name)
}

func TestMigrateLegacyContactsNoLegacyData(t *testing.T) {
	c := models.Customer{Name: "Sem Legado"}
	assert.False(t, MigrateLegacyContacts(&c))
	assert.Empty(t, c.ContactList())

	// Whitespace-only company counts as absent.
	c = models.Customer{Company: "   "}
	assert.False(t, MigrateLegacyContacts(&c))
}

func TestMigrateLegacyContactsIdempotent(t *testing.T) {
	c := models.Customer{Company: "SCML", Phone: "+351 213 235 000"}

	assert.True(t, MigrateLegacyContacts(&c))
	first := c.ContactList()

	assert.False(t, MigrateLegacyContacts(&c))
	assert.Equal(t, first, c.ContactList())
}
