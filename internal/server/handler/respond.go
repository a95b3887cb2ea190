package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svcErr "github.com/idktogo/idk-to-go/internal/errors"
)

// parseID reads a positive uint64 path parameter.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondError translates a service error into an HTTP response. Client
// errors carry the message; server-side failures are reported as a generic
// failed operation without leaking store details.
func respondError(c *gin.Context, err error) {
	status := svcErr.HTTPStatus(err)
	if status >= http.StatusInternalServerError ||
		errors.Is(err, svcErr.ErrStoreUnavailable) {
		c.JSON(status, gin.H{"error": "operation failed"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
