package http

import (
	"github.com/gin-gonic/gin"

	"conversational-support-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one conversational turn. When session_id is omitted a new session is created and its id returned.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newChatResp(output))
}

// ClearSession godoc
// @Summary     Clear a chat session
// @Description Removes all persisted conversation state for a session. The next message with the same id starts fresh.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.ClearContext(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ClearContext: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
