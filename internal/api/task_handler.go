package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// decodeTaskRequest parses and validates a task payload, writing the error
// response itself when the payload is unusable.
func (h *TaskHandler) decodeTaskRequest(
	w http.ResponseWriter,
	r *http.Request,
) (TaskRequest, bool) {
	var req TaskRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return TaskRequest{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return TaskRequest{}, false
	}

	return req, true
}

// taskFromRequest builds a domain task from the request payload, applying
// the default status and priority for omitted fields.
func taskFromRequest(req TaskRequest) (*domain.Task, error) {
	status := domain.StatusPending
	if req.Status != "" {
		status = domain.Status(req.Status)
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	return domain.NewTask(req.Title, req.Description, status, priority)
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := taskFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.CreateTask(r.Context(), task); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to create task",
				"error", err,
				"title", req.Title)
			HandleAPIError(w, r, err, "Failed to create task")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{
		Message: "Task created",
		TaskID:  task.ID,
	})
}

// ListTasks handles GET /tasks requests with optional status and priority
// query filters.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	filter := domain.TaskFilter{
		Status:   domain.Status(r.URL.Query().Get("status")),
		Priority: domain.Priority(r.URL.Query().Get("priority")),
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		// Filter validation errors map to 400; everything else is a 500
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to list tasks", "error", err)
			HandleAPIError(w, r, err, "Failed to list tasks")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to get task",
				"error", err,
				"task_id", id)
			HandleAPIError(w, r, err, "Failed to get task")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := taskFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	task.ID = id

	if err := h.taskService.UpdateTask(r.Context(), task); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to update task",
				"error", err,
				"task_id", id)
			HandleAPIError(w, r, err, "Failed to update task")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task updated",
	})
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to delete task",
				"error", err,
				"task_id", id)
			HandleAPIError(w, r, err, "Failed to delete task")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted",
	})
}
