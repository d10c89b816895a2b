package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/dto"
	"github.com/financeira-app/gf_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for monthly reports and their exports.
type ReportHandler struct {
	reportService portssvc.ReportSvcFacade
	exportService portssvc.ExportSvcFacade
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs portssvc.ReportSvcFacade, es portssvc.ExportSvcFacade) *ReportHandler {
	return &ReportHandler{reportService: rs, exportService: es}
}

// registerReportRoutes sets up the routes for report operations.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvcFacade, es portssvc.ExportSvcFacade) {
	h := NewReportHandler(rs, es)
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.GetMonthlyReport)
		reports.GET("/monthly/export/pdf", h.ExportMonthlyReportPDF)
		reports.GET("/monthly/export/xlsx", h.ExportMonthlyReportSpreadsheet)
	}
}

// respondReportError maps report and export errors to HTTP responses.
func respondReportError(c *gin.Context, err error) {
	var renderErr *apperrors.RenderError
	switch {
	case errors.Is(err, apperrors.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Storage temporarily unavailable"})
	case errors.As(err, &renderErr):
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Document rendering failed",
			slog.String("format", renderErr.Format),
			slog.String("error", renderErr.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("Failed to render %s document", renderErr.Format)})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Report operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// periodParams reads and parses the year and month query parameters.
func periodParams(c *gin.Context) (year, month int, ok bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
		return 0, 0, false
	}
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month parameter"})
		return 0, 0, false
	}
	return year, month, true
}

// buildReport resolves the authenticated user and assembles the report for
// the requested period, writing the error response on failure.
func (h *ReportHandler) buildReport(c *gin.Context) (*domain.MonthlyReport, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	year, month, ok := periodParams(c)
	if !ok {
		return nil, false
	}

	report, err := h.reportService.MonthlyReport(c.Request.Context(), userID, year, month)
	if err != nil {
		respondReportError(c, err)
		return nil, false
	}
	return report, true
}

// writeExportFile streams a rendered document as an attachment download.
func writeExportFile(c *gin.Context, file *dto.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// GetMonthlyReport godoc
// @Summary Monthly report
// @Description Returns income, expense and balance totals, per-category summaries and the period's transactions.
// @Tags reports
// @Produce json
// @Param year query int true "Year (1-9999)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// ExportMonthlyReportPDF godoc
// @Summary Monthly report as PDF
// @Description Downloads the monthly report as a PDF document.
// @Tags reports
// @Produce application/pdf
// @Param year query int true "Year (1-9999)"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly/export/pdf [get]
func (h *ReportHandler) ExportMonthlyReportPDF(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}

	file, err := h.exportService.RenderPDF(c.Request.Context(), report)
	if err != nil {
		respondReportError(c, err)
		return
	}
	writeExportFile(c, file)
}

// ExportMonthlyReportSpreadsheet godoc
// @Summary Monthly report as XLSX
// @Description Downloads the monthly report as a spreadsheet.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "Year (1-9999)"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly/export/xlsx [get]
func (h *ReportHandler) ExportMonthlyReportSpreadsheet(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}

	file, err := h.exportService.RenderSpreadsheet(c.Request.Context(), report)
	if err != nil {
		respondReportError(c, err)
		return
	}
	writeExportFile(c, file)
}
