package handlers

import (
	"encoding/json"
	"net/http"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/adapter/http/mapper"
	"projecthub/internal/adapter/http/middleware"
	"projecthub/internal/adapter/http/validation"
	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/apierrors"
	"projecthub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
	users       ports.UserDirectory
}

func NewTaskHandler(taskService ports.TaskService, users ports.UserDirectory) *TaskHandler {
	return &TaskHandler{taskService: taskService, users: users}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusCreated, h.taskItem(c, task))
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, zap.String("project_id", projectID))
		return
	}

	users := resolveUsers(c, h.users, mapper.TaskUserIDs(tasks...))
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, users))
}

func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	stats, err := h.taskService.GetTaskStats(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTaskStats, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStats(stats))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, h.taskItem(c, task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, h.taskItem(c, task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Message(apierrors.MsgTaskDeleted, middleware.GetLang(c)),
	})
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidCommentPayload)
		return
	}

	task, err := h.taskService.AddComment(c.Request.Context(), userID, taskID, req.Text)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAddComment, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, h.taskItem(c, task))
}

func (h *TaskHandler) taskItem(c *gin.Context, task domain.Task) dto.TaskItem {
	return mapper.ToTaskItem(task, resolveUsers(c, h.users, mapper.TaskUserIDs(task)))
}
