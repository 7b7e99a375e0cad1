package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// AuthHandler serves login, refresh, logout and profile.
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	pair, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 11001, "correo o contraseña incorrectos")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, pair)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Unauthorized(c, 11002, "token inválido o expirado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, pair)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		response.BadRequest(c, 10001, "falta el token")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Unauthorized(c, 11002, "token inválido o expirado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	workerID, ok := MustGetWorkerID(c)
	if !ok {
		return
	}

	worker, err := h.authSvc.Me(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.NotFound(c, 12001, "trabajador no encontrado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, worker)
}
