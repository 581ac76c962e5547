// Package logo converts uploaded image files to and from the
// self-describing data URI form stored in the document.
package logo

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/h2non/filetype"
)

// ErrUnsupportedType is returned when the uploaded bytes do not sniff as
// an image. Callers ignore it silently: no logo is applied, nothing
// fails.
var ErrUnsupportedType = errors.New("unsupported logo file type")

// DataURI converts uploaded bytes into a data URI. The content is
// sniffed, not trusted from a filename or header.
func DataURI(raw []byte) (string, error) {
	if !filetype.IsImage(raw) {
		return "", ErrUnsupportedType
	}
	kind, err := filetype.Match(raw)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnsupportedType
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Decode splits a data URI back into its MIME type and raw bytes.
func Decode(uri string) (mime string, raw []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	mime, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, errors.New("data URI is not base64 encoded")
	}
	raw, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, err
	}
	return mime, raw, nil
}
