package logo

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestDataURIRoundTrip(t *testing.T) {
	raw := pngBytes(t)

	uri, err := DataURI(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	mime, decoded, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, raw, decoded)
}

func TestDataURIRejectsNonImage(t *testing.T) {
	_, err := DataURI([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = DataURI(nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, _, err := Decode("http://example.com/logo.png")
	assert.Error(t, err)

	_, _, err = Decode("data:image/png,plain")
	assert.Error(t, err)

	_, _, err = Decode("data:image/png;base64,!!!")
	assert.Error(t, err)
}
