package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/pkg/response"
)

// MustGetWorkerID extracts the authenticated worker id injected by the
// JWT middleware. On failure it writes a 401 and returns false; callers
// should return immediately.
func MustGetWorkerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("worker_id")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "no autenticado")
		return 0, false
	}
	return id, true
}

// pathID parses the numeric :id path parameter. On failure it writes a
// 400 and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "id inválido")
		return 0, false
	}
	return id, true
}
