package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/pkg/response"
)

// Reload godoc
// @Summary     Rebuild the vector index
// @Description Re-embeds every catalog task into the vector collection in the background.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token header string    false "Admin token, required when configured"
// @Param       body          body   reloadReq false "Reload options"
// @Success     202 {object} reloadResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Reload already running"
// @Router      /api/v1/reload-data [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReloadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.StartReload(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.StartReload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, reloadResp{Message: "reload started", Recreate: req.Recreate})
}

// Status godoc
// @Summary     Service status
// @Description Reports catalog size, vector collection state, configured models and the last reload.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(output))
}
