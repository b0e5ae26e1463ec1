package cover // import "github.com/herhimstory-source/Reading-Log/internal/cover"

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/herhimstory-source/Reading-Log/internal/util"
	"github.com/pkg/errors"
)

const (
	placeholderFormat = "https://picsum.photos/seed/%s/400/600"
	dataURIPrefix     = "data:image/webp;base64,"
)

// Placeholder returns a random stock cover URL.
func Placeholder() string {
	return fmt.Sprintf(placeholderFormat, util.GenUUID())
}

// EncodeDataURI decodes a PNG, JPEG or WebP image and re-encodes it as a
// lossy WebP data URI, small enough to live in a spreadsheet cell.
func EncodeDataURI(r io.Reader, quality int) (string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", errors.Wrap(err, "decode cover image")
	}
	if quality <= 0 || quality > 100 {
		quality = 75
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return "", errors.Wrapf(err, "encode %s cover as webp", format)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func FileDataURI(path string, quality int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open cover file")
	}
	defer f.Close()
	return EncodeDataURI(f, quality)
}
