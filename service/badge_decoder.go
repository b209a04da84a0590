package service

import (
	"fmt"
	"image"
	"strings"

	log "github.com/couchbase/clog"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// BadgeDecoder reads the QR code printed on an employee badge. The payload
// is plain text in the same "ID - Name" shape as a directory line.
type BadgeDecoder interface {
	DecodeBadge(img image.Image) (string, error)
}

type qrBadgeDecoder struct{}

func NewBadgeDecoder() BadgeDecoder {
	return &qrBadgeDecoder{}
}

func (d *qrBadgeDecoder) DecodeBadge(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	text := strings.TrimSpace(result.GetText())
	if text == "" {
		return "", fmt.Errorf("QR code is empty")
	}

	log.Printf("badge QR decoded, length: %d bytes", len(text))
	return text, nil
}
