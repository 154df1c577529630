package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMontant(t *testing.T) {
	cas := map[string]string{
		"0.00":       "0.00",
		"750.00":     "750.00",
		"1234.50":    "1 234.50",
		"1000000.00": "1 000 000.00",
		"950":        "950",
		"12345":      "12 345",
	}
	for in, attendu := range cas {
		assert.Equal(t, attendu, formatMontant(in), "montant %q", in)
	}
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "valeur", nonEmpty("valeur", "—"))
	assert.Equal(t, "—", nonEmpty("", "—"))
}
