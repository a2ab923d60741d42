package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"leadtrack_backend/internal/leads/importer"
	"leadtrack_backend/internal/leads/service"
	"leadtrack_backend/internal/leads/transport"
	"leadtrack_backend/platform/httpkit"
	"leadtrack_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// ImportFile accepts a multipart upload under the "file" field and imports
// it as CSV or spreadsheet. The format comes from the "format" form value,
// falling back to the file extension.
func (h *Handler) ImportFile(c *gin.Context) {
	scope, ok := actorScope(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}

	format, ok := resolveFormat(c.PostForm("format"), fileHeader.Filename)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, "unsupported import format", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read file", nil)
		return
	}

	report, err := h.svc.ImportFile(c.Request.Context(), scope.ActorID, service.FileImport{
		Format:      format,
		FileName:    filepath.Base(fileHeader.Filename),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, report)
}

func (h *Handler) ImportProvider(c *gin.Context) {
	scope, ok := actorScope(c)
	if !ok {
		return
	}

	var req transport.ProviderImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	report, err := h.svc.ImportProvider(c.Request.Context(), scope.ActorID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, report)
}

func (h *Handler) ListImports(c *gin.Context) {
	scope, ok := actorScope(c)
	if !ok {
		return
	}

	reports, err := h.svc.ListImports(c.Request.Context(), scope)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"success": true, "data": reports})
}

func resolveFormat(formValue, fileName string) (importer.Format, bool) {
	switch strings.ToLower(formValue) {
	case "csv":
		return importer.FormatCSV, true
	case "xlsx", "spreadsheet":
		return importer.FormatSpreadsheet, true
	case "":
	default:
		return "", false
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return importer.FormatCSV, true
	case ".xlsx":
		return importer.FormatSpreadsheet, true
	default:
		return "", false
	}
}
