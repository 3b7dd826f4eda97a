package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processReloadReq accepts an empty body as the default options.
func (h *handler) processReloadReq(c *gin.Context) (reloadReq, error) {
	var req reloadReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
