package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// WorkerHandler serves worker CRUD.
type WorkerHandler struct {
	workerSvc service.WorkerService
}

func NewWorkerHandler(workerSvc service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerSvc: workerSvc}
}

// List GET /api/v1/workers
func (h *WorkerHandler) List(c *gin.Context) {
	workers, err := h.workerSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": workers})
}

// Get GET /api/v1/workers/:id
func (h *WorkerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	worker, err := h.workerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, worker)
}

// Create POST /api/v1/workers
func (h *WorkerHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	worker, err := h.workerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, worker)
}

// Update PUT /api/v1/workers/:id
func (h *WorkerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	worker, err := h.workerSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, worker)
}

// Delete DELETE /api/v1/workers/:id
func (h *WorkerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.workerSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *WorkerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 12001, "trabajador no encontrado")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 12002, "el email ya está registrado")
	case errors.Is(err, service.ErrRUTTaken):
		response.Conflict(c, 12003, "el rut ya está registrado")
	default:
		response.InternalError(c)
	}
}
