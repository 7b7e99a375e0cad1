package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// ── Shift ──

type ShiftHandler struct {
	shiftSvc service.ShiftService
}

func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// List GET /api/v1/shifts
func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.shiftSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": shifts})
}

// Get GET /api/v1/shifts/:id
func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	shift, err := h.shiftSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, shift)
}

// Create POST /api/v1/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	shift, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, shift)
}

// Update PUT /api/v1/shifts/:id
func (h *ShiftHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	shift, err := h.shiftSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, shift)
}

// Delete DELETE /api/v1/shifts/:id
func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.shiftSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShiftHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14001, "turno no encontrado")
	case errors.Is(err, service.ErrWorkAreaNotFound):
		response.NotFound(c, 13003, "área de trabajo no encontrada")
	case errors.Is(err, service.ErrInvalidShiftTime):
		response.BadRequest(c, 14002, "formato de hora inválido")
	default:
		response.InternalError(c)
	}
}

// ── Shift assignment ──

type ShiftAssignmentHandler struct {
	assignmentSvc service.ShiftAssignmentService
}

func NewShiftAssignmentHandler(assignmentSvc service.ShiftAssignmentService) *ShiftAssignmentHandler {
	return &ShiftAssignmentHandler{assignmentSvc: assignmentSvc}
}

// List GET /api/v1/shift-assignments
func (h *ShiftAssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": assignments})
}

// Get GET /api/v1/shift-assignments/:id
func (h *ShiftAssignmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Create POST /api/v1/shift-assignments
func (h *ShiftAssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateShiftAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, assignment)
}

// Update PUT /api/v1/shift-assignments/:id
func (h *ShiftAssignmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateShiftAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Delete DELETE /api/v1/shift-assignments/:id
func (h *ShiftAssignmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShiftAssignmentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 14003, "asignación no encontrada")
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14001, "turno no encontrado")
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 12001, "trabajador no encontrado")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 14004, "formato de fecha inválido")
	case errors.Is(err, service.ErrDateRangeInvalid):
		response.BadRequest(c, 14005, "rango de fechas inválido")
	default:
		response.InternalError(c)
	}
}
