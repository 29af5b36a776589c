package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{"formatted indian number", "+91 98655 62421", "919865562421"},
		{"dashes and parens", "(044) 123-4567", "0441234567"},
		{"already digits", "919865562421", "919865562421"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DigitsOnly(tt.phone))
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/919865562421", WhatsAppLink("+91 98655 62421"))
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+91 98655 62421", TelLink("+91 98655 62421"))
}
