package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice transcript
// @Description Turns a speech transcript into a task draft (title, priority, status, due date).
// @Description Uses the completion service when configured, otherwise a rule-based parser.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body     parseReq true "Transcript"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Transcript is required"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/voice/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	draft, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.voice.delivery.http.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(draft))
}
