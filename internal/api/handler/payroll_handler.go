package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// PayrollHandler serves the monthly salary view.
type PayrollHandler struct {
	payrollSvc service.PayrollService
}

func NewPayrollHandler(payrollSvc service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

// List GET /api/v1/payroll?month=YYYY-MM
func (h *PayrollHandler) List(c *gin.Context) {
	rows, err := h.payrollSvc.ListMonth(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": rows})
}

// UpdateRate PUT /api/v1/payroll/:id/rate
func (h *PayrollHandler) UpdateRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateHourlyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	row, err := h.payrollSvc.UpdateRate(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkerNotFound):
			response.NotFound(c, 12001, "trabajador no encontrado")
		case errors.Is(err, service.ErrNoPayRate):
			response.BadRequest(c, 16001, "debe indicar un valor hora o un sueldo manual")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, row)
}

// Recalculate POST /api/v1/payroll/recalculate
func (h *PayrollHandler) Recalculate(c *gin.Context) {
	updated, err := h.payrollSvc.RecalculateAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"updated": updated})
}
