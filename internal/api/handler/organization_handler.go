package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// ── Company ──

type CompanyHandler struct {
	companySvc service.CompanyService
}

func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

// List GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": companies})
}

// Get GET /api/v1/companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, company)
}

// Create POST /api/v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	company, err := h.companySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, company)
}

// Update PUT /api/v1/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	company, err := h.companySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, company)
}

// Delete DELETE /api/v1/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.companySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *CompanyHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		response.NotFound(c, 13001, "empresa no encontrada")
	default:
		response.InternalError(c)
	}
}

// ── Branch ──

type BranchHandler struct {
	branchSvc service.BranchService
}

func NewBranchHandler(branchSvc service.BranchService) *BranchHandler {
	return &BranchHandler{branchSvc: branchSvc}
}

// List GET /api/v1/branches
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.branchSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": branches})
}

// Get GET /api/v1/branches/:id
func (h *BranchHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	branch, err := h.branchSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, branch)
}

// Create POST /api/v1/branches
func (h *BranchHandler) Create(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	branch, err := h.branchSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, branch)
}

// Update PUT /api/v1/branches/:id
func (h *BranchHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	branch, err := h.branchSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, branch)
}

// Delete DELETE /api/v1/branches/:id
func (h *BranchHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.branchSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *BranchHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBranchNotFound):
		response.NotFound(c, 13002, "sucursal no encontrada")
	case errors.Is(err, service.ErrCompanyNotFound):
		response.NotFound(c, 13001, "empresa no encontrada")
	default:
		response.InternalError(c)
	}
}

// ── Work area ──

type WorkAreaHandler struct {
	areaSvc service.WorkAreaService
}

func NewWorkAreaHandler(areaSvc service.WorkAreaService) *WorkAreaHandler {
	return &WorkAreaHandler{areaSvc: areaSvc}
}

// List GET /api/v1/work-areas
func (h *WorkAreaHandler) List(c *gin.Context) {
	areas, err := h.areaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": areas})
}

// Get GET /api/v1/work-areas/:id
func (h *WorkAreaHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	area, err := h.areaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, area)
}

// Create POST /api/v1/work-areas
func (h *WorkAreaHandler) Create(c *gin.Context) {
	var req dto.CreateWorkAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	area, err := h.areaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, area)
}

// Update PUT /api/v1/work-areas/:id
func (h *WorkAreaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}
	area, err := h.areaSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, area)
}

// Delete DELETE /api/v1/work-areas/:id
func (h *WorkAreaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.areaSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *WorkAreaHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkAreaNotFound):
		response.NotFound(c, 13003, "área de trabajo no encontrada")
	case errors.Is(err, service.ErrBranchNotFound):
		response.NotFound(c, 13002, "sucursal no encontrada")
	default:
		response.InternalError(c)
	}
}
