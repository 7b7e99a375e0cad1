package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// AttendanceHandler serves the check-in/check-out state machine and
// justification processing.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// List GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.attendanceSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": records})
}

// CheckIn POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.attendanceSvc.CheckIn(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// CheckOut POST /api/v1/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.attendanceSvc.CheckOut(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// AttachMessage POST /api/v1/attendance/message
func (h *AttendanceHandler) AttachMessage(c *gin.Context) {
	var req dto.AttachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.attendanceSvc.AttachMessage(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Process POST /api/v1/attendance/:id/process
func (h *AttendanceHandler) Process(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	record, err := h.attendanceSvc.Process(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, record)
}

func (h *AttendanceHandler) writeTransition(c *gin.Context, result *dto.TransitionResponse) {
	if result.Created {
		response.Created(c, result.Record)
		return
	}
	response.OK(c, result.Record)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingIdentity):
		response.BadRequest(c, 15001, "debe indicar id, email o rut")
	case errors.Is(err, service.ErrEmptyMessage):
		response.BadRequest(c, 15002, "el mensaje no puede estar vacío")
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 12001, "trabajador no encontrado")
	case errors.Is(err, service.ErrNoRecordToday):
		response.NotFound(c, 15003, "no existe registro para hoy")
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 15004, "registro no encontrado")
	case errors.Is(err, service.ErrEntryAlreadyMarked):
		response.Conflict(c, 15005, "la entrada de hoy ya fue marcada")
	case errors.Is(err, service.ErrExitWithoutEntry):
		response.Conflict(c, 15006, "no hay entrada que cerrar")
	case errors.Is(err, service.ErrExitAlreadyMarked):
		response.Conflict(c, 15007, "la salida de hoy ya fue marcada")
	case errors.Is(err, service.ErrRecordIsAttendance):
		response.Conflict(c, 15008, "el registro es de asistencia, no se procesa")
	case errors.Is(err, service.ErrAlreadyProcessed):
		response.Conflict(c, 15009, "el registro ya fue procesado")
	default:
		response.InternalError(c)
	}
}
