package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	log "github.com/couchbase/clog"
	"github.com/otiai10/gosseract/v2"
)

// TesseractClient reads directory listings out of scanned pages.
type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath, language string) *TesseractClient {
	if language == "" {
		language = "eng"
	}
	return &TesseractClient{
		dataPath: dataPath,
		language: language,
	}
}

// ExtractText runs OCR on img and returns the recognised text, one
// directory line per text line.
func (tc *TesseractClient) ExtractText(img image.Image) (string, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return tc.ExtractTextFromBytes(buf.Bytes())
}

// ExtractTextFromBytes runs OCR on an encoded PNG or JPEG image.
func (tc *TesseractClient) ExtractTextFromBytes(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}

	if err := client.SetLanguage(tc.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	// Directory scans are columns of short lines.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_COLUMN); err != nil {
		return "", fmt.Errorf("failed to set page segmentation: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	log.Debugf("tesseract: extracted %d characters", len(text))
	return text, nil
}
