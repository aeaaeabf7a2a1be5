package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"news_api/internal/apperr"
)

// fail renders err as {"msg": ...}. Internal causes are logged, not returned.
func (h *Handler) fail(c *gin.Context, err error) {
	ae := apperr.From(err)

	if ae.Kind == apperr.KindInternal {
		h.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	if h.metrics != nil {
		h.metrics.RecordError(ae.Kind.String())
	}

	c.AbortWithStatusJSON(ae.Kind.HTTPStatus(), gin.H{"msg": ae.Message})
}

func (h *Handler) handlePanic(c *gin.Context, recovered any) {
	h.fail(c, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
}
