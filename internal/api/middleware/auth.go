package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/pkg/jwt"
	"github.com/L52103/appEscritorioControl/pkg/redis"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

// JWTAuth validates the Authorization: Bearer access token, checks the
// redis blacklist (skipped when rdb is nil) and injects worker_id and
// is_admin into the context.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta el encabezado de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "encabezado de autenticación inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o expirado")
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token revocado")
				c.Abort()
				return
			}
		}

		c.Set("worker_id", claims.WorkerID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly rejects requests from non-admin workers. Must run after
// JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("is_admin")
		if !exists {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}
		if isAdmin, ok := v.(bool); !ok || !isAdmin {
			response.Forbidden(c, 10003, "requiere permisos de administrador")
			c.Abort()
			return
		}
		c.Next()
	}
}
