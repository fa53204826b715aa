package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

// Recovery converts panics in handlers into 500 responses.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, apperrors.NewInternalError("internal server error"))
		c.Abort()
	})
}
