package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountForKnownServices(t *testing.T) {
	tests := []struct {
		service string
		want    int64
	}{
		{"Prenatal Checkup", 5000},
		{"Family Planning", 15000},
		{"Ultrasound", 3000},
		{"Immunization", 1000},
	}

	for _, tt := range tests {
		amount, err := AmountFor(tt.service)
		require.NoError(t, err, tt.service)
		assert.Equal(t, tt.want, amount, tt.service)
	}
}

func TestAmountForUnknownService(t *testing.T) {
	_, err := AmountFor("Dental Cleaning")
	assert.Error(t, err)

	_, err = AmountFor("")
	assert.Error(t, err)

	// Lookup is exact, not case-insensitive.
	_, err = AmountFor("prenatal checkup")
	assert.Error(t, err)
}
