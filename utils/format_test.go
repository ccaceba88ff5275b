package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "0,00 €", FormatEUR(0))
	assert.Equal(t, "150,50 €", FormatEUR(150.50))

	// pt-PT uses a decimal comma; grouping separators vary by CLDR version,
	// so only assert the fraction and currency sign for large amounts.
	big := FormatEUR(12345.6)
	assert.True(t, strings.HasSuffix(big, ",60 €"), big)
}
