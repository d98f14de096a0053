package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns tasks newest first. search matches title or description, case-insensitively.
// @Tags        Tasks
// @Produce     json
// @Param       status   query    string false "Filter by status"
// @Param       priority query    string false "Filter by priority"
// @Param       search   query    string false "Substring of title or description"
// @Success     200      {array}  taskResp
// @Failure     500      {object} response.Resp
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out.Tasks))
}

// Create godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "Task"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.Resp "Title is required"
// @Failure     500  {object} response.Resp
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskResp(out.Task))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(out.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields are unchanged, a null or empty dueDate clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path     string    true "Task ID"
// @Param       body body     updateReq true "Fields to change"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Title cannot be empty"
// @Failure     404  {object} response.Resp "Task not found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Update(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(out.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} response.Resp "Task deleted successfully"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, "Task deleted successfully")
}
