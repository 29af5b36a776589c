package utils

import "strings"

// DigitsOnly strips everything but digits from a phone number.
func DigitsOnly(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TelLink builds a tel: deep link for the given phone number.
func TelLink(phone string) string {
	return "tel:" + phone
}

// WhatsAppLink builds a wa.me deep link. WhatsApp only accepts digits,
// so the number is normalized first.
func WhatsAppLink(phone string) string {
	return "https://wa.me/" + DigitsOnly(phone)
}
