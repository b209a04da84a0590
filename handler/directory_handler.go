package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Aashish23092/directory-dedupe/dto"
	"github.com/Aashish23092/directory-dedupe/service"
	log "github.com/couchbase/clog"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryService *service.DirectoryService
	maxFileSize      int64
}

func NewDirectoryHandler(directoryService *service.DirectoryService, maxFileSize int64) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
		maxFileSize:      maxFileSize,
	}
}

// Register mounts the directory routes on rg.
func (h *DirectoryHandler) Register(rg *gin.RouterGroup) {
	directory := rg.Group("/directory")
	{
		directory.POST("/dedupe", h.Dedupe)
		directory.POST("/upload", h.Upload)
	}
}

// Dedupe handles the POST /directory/dedupe endpoint
func (h *DirectoryHandler) Dedupe(c *gin.Context) {
	var req dto.DedupeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Request body must be {\"entries\": [...]}", err)
		return
	}

	log.Printf("Received dedupe request with %d entries", len(req.Entries))

	c.JSON(http.StatusOK, h.directoryService.Dedupe(req.Entries))
}

// Upload handles the POST /directory/upload endpoint
func (h *DirectoryHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "file is required", err)
		return
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		h.sendError(c, http.StatusBadRequest, "File too large", dto.ErrFileTooLarge)
		return
	}

	log.Printf("Processing directory upload: %s (%d bytes)", file.Filename, file.Size)

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data", err)
		return
	}

	resp, err := h.directoryService.DedupeDocument(c.Request.Context(), data, c.PostForm("password"))
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to dedupe directory", err)
		return
	}

	log.Printf("Directory upload processed: %d unique employee IDs", resp.Summary.UniqueIDs)
	c.JSON(http.StatusOK, resp)
}

// sendError sends a structured error response
func (h *DirectoryHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Warnf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "DEDUPE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrEmptyDocument),
		errors.Is(err, dto.ErrUnsupportedDocument),
		errors.Is(err, dto.ErrNoEntries),
		errors.Is(err, dto.ErrPDFDecrypt):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
