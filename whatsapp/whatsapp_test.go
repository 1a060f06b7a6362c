package whatsapp

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	link, err := Link("+1 (234) 567-895")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/1234567895", link)

	_, err = Link("+()")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestQRCodeIsPNG(t *testing.T) {
	data, err := QRCode("+1234567895", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestPrintQR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintQR(&buf, "+1234567895"))
	assert.NotZero(t, buf.Len())

	assert.ErrorIs(t, PrintQR(&buf, ""), ErrInvalidNumber)
}
