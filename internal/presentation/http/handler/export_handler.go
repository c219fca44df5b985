package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitsphere-automation/LD-InvGen/internal/application/service"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/dto/response"
)

// ExportHandler handles preview and PDF export requests.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Preview returns the laid-out document as draw operations per page. The
// browser renders these; the same layout pass backs the PDF export.
func (h *ExportHandler) Preview(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	pages, err := h.exportService.Preview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preview generated", gin.H{
		"page_count": len(pages),
		"pages":      pages,
	})
}

// Export renders the session to PDF and streams it as a download.
func (h *ExportHandler) Export(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.exportService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Header("Content-Length", strconv.Itoa(len(result.Data)))
	c.Data(http.StatusOK, "application/pdf", result.Data)
}
