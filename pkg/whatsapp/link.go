// Package whatsapp builds click-to-chat links. Constructing a link always
// succeeds when a phone number is present; it is not a delivery confirmation.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNoPhone = errors.New("no phone number to build a whatsapp link from")

// BuildLink returns a wa.me click-to-chat URL for the given phone number and
// pre-filled message. Everything except digits is stripped from the number.
func BuildLink(phone, message string) (string, error) {

	digits := normalizePhone(phone)
	if digits == "" {
		return "", ErrNoPhone
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}

func normalizePhone(phone string) string {

	var b strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
