package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves attendance reports, file exports and the
// absence predictor.
type ReportHandler struct {
	reportSvc     service.ReportService
	exportSvc     service.ExportService
	predictionSvc service.PredictionService
}

func NewReportHandler(reportSvc service.ReportService, exportSvc service.ExportService, predictionSvc service.PredictionService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc, predictionSvc: predictionSvc}
}

// MonthlyAttendance GET /api/v1/reports/monthly-attendance
func (h *ReportHandler) MonthlyAttendance(c *gin.Context) {
	rows, err := h.reportSvc.MonthlyAttendance(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": rows})
}

// ExportAttendance GET /api/v1/reports/attendance/export
func (h *ReportHandler) ExportAttendance(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportMonthlyReport GET /api/v1/reports/monthly-attendance/export
func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportMonthlyReport(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportShiftCalendar GET /api/v1/reports/shift-calendar/:id
func (h *ReportHandler) ExportShiftCalendar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, filename, err := h.exportSvc.ExportShiftCalendar(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar", data)
}

// PredictAbsence GET /api/v1/reports/predict-absence/:id
func (h *ReportHandler) PredictAbsence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	prediction, err := h.predictionSvc.PredictNextAbsence(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkerNotFound):
			response.NotFound(c, 12001, "trabajador no encontrado")
		case errors.Is(err, service.ErrNotEnoughHistory):
			response.Conflict(c, 17001, "historial insuficiente para predecir")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, prediction)
}

func (h *ReportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 17002, "no hay datos para exportar")
	case errors.Is(err, service.ErrExportNoAssignments):
		response.NotFound(c, 17003, "el trabajador no tiene turnos asignados")
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 12001, "trabajador no encontrado")
	default:
		response.InternalError(c)
	}
}
