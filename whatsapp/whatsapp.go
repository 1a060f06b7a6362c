// Package whatsapp builds the pairing link and QR codes of a WhatsApp instance number.
package whatsapp

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"strings"
	"unicode"

	"github.com/mdp/qrterminal"
	"github.com/skip2/go-qrcode"
)

// ErrInvalidNumber is returned for a number without any digit
var ErrInvalidNumber = errors.New("number has no digits")

const linkBase = "https://wa.me/"

// Normalize strips everything but digits from a phone number
func Normalize(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)
}

// Link returns the click-to-chat link of a number
func Link(number string) (string, error) {
	digits := Normalize(number)
	if digits == "" {
		return "", ErrInvalidNumber
	}
	return linkBase + digits, nil
}

// QRCode returns a PNG QR code of the number's link, size pixels wide
func QRCode(number string, size int) ([]byte, error) {
	link, err := Link(number)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(size)); err != nil {
		return nil, fmt.Errorf("failed to encode QR code image: %w", err)
	}

	return buf.Bytes(), nil
}

// PrintQR writes the number's link as a half-block terminal QR code
func PrintQR(w io.Writer, number string) error {
	link, err := Link(number)
	if err != nil {
		return err
	}

	qrterminal.GenerateHalfBlock(link, qrterminal.L, w)
	return nil
}
