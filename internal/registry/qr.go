// Package registry cross-validates a commerce license against the public
// mercantile registry page referenced by the document's QR code. Every
// failure mode here degrades to "online check unavailable"; nothing in this
// package may block the extraction result.
package registry

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// DecodeQR looks for a QR code in an image file and returns its payload.
// PDF sources are not scanned for codes; callers treat the error as
// "no QR present".
func DecodeQR(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no qr code: %w", err)
	}
	return result.GetText(), nil
}

// IsRegistryURL reports whether a QR payload points at a page we know how to
// scrape.
func IsRegistryURL(payload string) bool {
	return strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://")
}
