package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves data exports.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CreateExport godoc
// @Summary Export all of the caller's data
// @Description Uploads a JSON snapshot to object storage and returns a temporary download URL.
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ExportResult
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	result, err := h.exportService.ExportMine(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
