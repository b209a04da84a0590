package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/Aashish23092/directory-dedupe/dto"
	"github.com/Aashish23092/directory-dedupe/utils"
	"github.com/Aashish23092/directory-dedupe/utils/employeeid"
	log "github.com/couchbase/clog"
	"github.com/gabriel-vasile/mimetype"
)

// Sources reported in DedupeResponse.Source.
const (
	SourceText = "text"
	SourcePDF  = "pdf"
	SourceOCR  = "ocr"
	SourceQR   = "qr"
)

// TextRecognizer turns a scanned page into text.
type TextRecognizer interface {
	ExtractText(img image.Image) (string, error)
}

type DirectoryService struct {
	ocr          TextRecognizer
	pdfProcessor PDFProcessor
	badges       BadgeDecoder
}

func NewDirectoryService(ocr TextRecognizer, pdfProcessor PDFProcessor, badges BadgeDecoder) *DirectoryService {
	return &DirectoryService{
		ocr:          ocr,
		pdfProcessor: pdfProcessor,
		badges:       badges,
	}
}

// Dedupe merges entries by employee ID and builds the deletion report.
func (s *DirectoryService) Dedupe(entries []string) *dto.DedupeResponse {
	dir := employeeid.DedupeByEmployeeID(entries)

	users := make([]dto.DirectoryUser, 0, dir.Unique())
	for _, e := range dir.Entries() {
		users = append(users, dto.DirectoryUser{
			EmployeeID: e.EmployeeID,
			Username:   e.Username,
			FullName:   e.FullName,
		})
	}

	log.Printf("dedupe: %d entries processed, %d unique employee IDs, %d duplicates",
		dir.Processed(), dir.Unique(), dir.Duplicates())

	return &dto.DedupeResponse{
		Users: users,
		Summary: dto.DedupeSummary{
			TotalProcessed:  dir.Processed(),
			UniqueIDs:       dir.Unique(),
			DuplicatesFound: dir.Duplicates(),
		},
	}
}

// DedupeDocument reads entries out of an uploaded document and dedupes them.
func (s *DirectoryService) DedupeDocument(ctx context.Context, data []byte, password string) (*dto.DedupeResponse, error) {
	entries, source, err := s.EntriesFromDocument(ctx, data, password)
	if err != nil {
		return nil, err
	}

	resp := s.Dedupe(entries)
	resp.Source = source
	return resp, nil
}

// EntriesFromDocument returns the directory lines found in a plain text,
// PDF or image document along with how they were obtained.
func (s *DirectoryService) EntriesFromDocument(ctx context.Context, data []byte, password string) ([]string, string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, "", dto.ErrEmptyDocument
	}

	mtype := mimetype.Detect(data)
	log.Printf("document: detected %s (%d bytes)", mtype.String(), len(data))

	var (
		text   string
		source string
		err    error
	)
	switch {
	case strings.HasPrefix(mtype.String(), "text/"):
		text, source = string(data), SourceText
	case mtype.Is("application/pdf"):
		text, source, err = s.pdfText(ctx, data, password)
	case strings.HasPrefix(mtype.String(), "image/"):
		text, source, err = s.imageText(data)
	default:
		return nil, "", fmt.Errorf("%w: %s", dto.ErrUnsupportedDocument, mtype.String())
	}
	if err != nil {
		return nil, "", err
	}

	entries := utils.SplitEntries(text)
	if len(entries) == 0 {
		return nil, "", dto.ErrNoEntries
	}
	return entries, source, nil
}

func (s *DirectoryService) pdfText(ctx context.Context, data []byte, password string) (string, string, error) {
	text, err := s.pdfProcessor.ExtractText(data, password)
	if err != nil {
		if errors.Is(err, dto.ErrPDFDecrypt) {
			return "", "", err
		}
		log.Warnf("document: pdf text extraction failed: %v. Falling back to OCR...", err)
	}
	if len(utils.SplitEntries(text)) > 0 {
		return text, SourcePDF, nil
	}

	// No text layer: a scanned directory.
	images, err := s.pdfProcessor.ExtractImages(data, password)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return "", "", dto.ErrNoEntries
	}

	log.Printf("document: running OCR on %d pages...", len(images))
	var fullText strings.Builder
	for idx, page := range images {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}

		pageText, err := s.recognize(page)
		if err != nil {
			log.Warnf("document: page %d OCR failed: %v", idx+1, err)
			continue
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}
	return fullText.String(), SourceOCR, nil
}

func (s *DirectoryService) imageText(data []byte) (string, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("%w: cannot decode image: %v", dto.ErrUnsupportedDocument, err)
	}

	if s.badges != nil {
		text, err := s.badges.DecodeBadge(img)
		if err == nil {
			return text, SourceQR, nil
		}
		log.Printf("document: no badge QR code (%v). Falling back to OCR...", err)
	}

	text, err := s.recognize(img)
	if err != nil {
		return "", "", fmt.Errorf("OCR extraction failed: %w", err)
	}
	return text, SourceOCR, nil
}

func (s *DirectoryService) recognize(img image.Image) (string, error) {
	if s.ocr == nil {
		return "", errors.New("OCR is not configured")
	}
	return s.ocr.ExtractText(img)
}
