package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/pkg/response"
)

// Suggest godoc
// @Summary     Suggest project tasks
// @Description Suggests 1 to 5 tasks for a project description using similar historical tasks as context.
// @Description Descriptions that fail the quality gate get a single request for more detail.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Project description"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggest-tasks [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Validate godoc
// @Summary     Validate a project description
// @Description Scores a description for coherence and project relevance and returns improvement hints.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       body body validateReq true "Text to validate"
// @Success     200  {object} validateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/validate-description [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newValidateResp(output))
}
