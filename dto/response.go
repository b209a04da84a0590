package dto

import "errors"

// Custom errors
var (
	ErrEmptyDocument       = errors.New("uploaded document is empty")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrNoEntries           = errors.New("no directory entries found in document")
	ErrFileTooLarge        = errors.New("uploaded file exceeds the size limit")
	ErrPDFDecrypt          = errors.New("failed to decrypt PDF")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
