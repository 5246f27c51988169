package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/store"
)

// mockTaskService is a mock implementation of the service.TaskService interface
type mockTaskService struct {
	createFn func(ctx context.Context, task *domain.Task) error
	getFn    func(ctx context.Context, id string) (*domain.Task, error)
	listFn   func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	updateFn func(ctx context.Context, task *domain.Task) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTaskService) CreateTask(ctx context.Context, task *domain.Task) error {
	return m.createFn(ctx, task)
}

func (m *mockTaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return m.getFn(ctx, id)
}

func (m *mockTaskService) ListTasks(
	ctx context.Context,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	return m.listFn(ctx, filter)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	return m.updateFn(ctx, task)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

const testTaskID = "64f1c0d2a5b9e8f7c6d5e4f3"
const testUserID = "64f1c0d2a5b9e8f7c6d5e4f4"

// newTaskRequest builds an authenticated request with an optional task ID
// path parameter, mirroring what the router and auth middleware produce.
func newTaskRequest(method, target, taskID string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	// Use chi router route context so URL parameters resolve
	if taskID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", taskID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req.WithContext(
		context.WithValue(req.Context(), shared.UserIDContextKey, testUserID))
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		payload        string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "valid task with defaults",
			payload:        `{"title":"Write the runbook"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid task with explicit fields",
			payload:        `{"title":"Ship it","description":"Final pass","status":"completed","priority":"high"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			payload:        `{"description":"No title here"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown status",
			payload:        `{"title":"Bad status","status":"archived"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown priority",
			payload:        `{"title":"Bad priority","priority":"urgent"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			payload:        `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service failure",
			payload:        `{"title":"Doomed"}`,
			serviceError:   errors.New("insert failed"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *domain.Task
			mockService := &mockTaskService{
				createFn: func(ctx context.Context, task *domain.Task) error {
					if tt.serviceError != nil {
						return tt.serviceError
					}
					task.ID = testTaskID
					captured = task
					return nil
				},
			}

			handler := NewTaskHandler(mockService)

			req := newTaskRequest("POST", "/tasks", "", []byte(tt.payload))
			recorder := httptest.NewRecorder()
			handler.CreateTask(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp TaskCreatedResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Task created", resp.Message)
				assert.Equal(t, testTaskID, resp.TaskID)
				require.NotNil(t, captured)
			}
		})
	}
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	t.Parallel()

	var captured *domain.Task
	mockService := &mockTaskService{
		createFn: func(ctx context.Context, task *domain.Task) error {
			task.ID = testTaskID
			captured = task
			return nil
		},
	}
	handler := NewTaskHandler(mockService)

	req := newTaskRequest("POST", "/tasks", "", []byte(`{"title":"Defaults"}`))
	recorder := httptest.NewRecorder()
	handler.CreateTask(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, captured)
	assert.Equal(t, domain.StatusPending, captured.Status)
	assert.Equal(t, domain.PriorityMedium, captured.Priority)
}

func TestCreateTaskUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(&mockTaskService{})

	// No user ID in context
	req := httptest.NewRequest("POST", "/tasks", bytes.NewBufferString(`{"title":"X"}`))
	recorder := httptest.NewRecorder()
	handler.CreateTask(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	sample := []*domain.Task{
		{
			ID:        testTaskID,
			Title:     "First",
			Status:    domain.StatusPending,
			Priority:  domain.PriorityHigh,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	tests := []struct {
		name           string
		target         string
		serviceResult  []*domain.Task
		serviceError   error
		expectedFilter domain.TaskFilter
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "unfiltered list",
			target:         "/tasks",
			serviceResult:  sample,
			expectedFilter: domain.TaskFilter{},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:          "filtered by status and priority",
			target:        "/tasks?status=pending&priority=high",
			serviceResult: sample,
			expectedFilter: domain.TaskFilter{
				Status:   domain.StatusPending,
				Priority: domain.PriorityHigh,
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "empty result",
			target:         "/tasks?status=completed",
			serviceResult:  []*domain.Task{},
			expectedFilter: domain.TaskFilter{Status: domain.StatusCompleted},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "invalid status filter",
			target:         "/tasks?status=archived",
			serviceError:   domain.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service failure",
			target:         "/tasks",
			serviceError:   errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedFilter domain.TaskFilter
			mockService := &mockTaskService{
				listFn: func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
					capturedFilter = filter
					return tt.serviceResult, tt.serviceError
				},
			}

			handler := NewTaskHandler(mockService)

			req := newTaskRequest("GET", tt.target, "", nil)
			recorder := httptest.NewRecorder()
			handler.ListTasks(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedFilter, capturedFilter)

				var resp []TaskResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedCount)

				// Empty lists serialize as [], not null
				if tt.expectedCount == 0 {
					assert.JSONEq(t, "[]", recorder.Body.String())
				}
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name           string
		taskID         string
		serviceResult  *domain.Task
		serviceError   error
		expectedStatus int
	}{
		{
			name:   "found",
			taskID: testTaskID,
			serviceResult: &domain.Task{
				ID:        testTaskID,
				Title:     "Found",
				Status:    domain.StatusPending,
				Priority:  domain.PriorityMedium,
				CreatedAt: now,
				UpdatedAt: now,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			taskID:         "ffffffffffffffffffffffff",
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed ID addresses nothing",
			taskID:         "not-an-object-id",
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service failure",
			taskID:         testTaskID,
			serviceError:   errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockTaskService{
				getFn: func(ctx context.Context, id string) (*domain.Task, error) {
					assert.Equal(t, tt.taskID, id)
					return tt.serviceResult, tt.serviceError
				},
			}

			handler := NewTaskHandler(mockService)

			req := newTaskRequest("GET", "/tasks/"+tt.taskID, tt.taskID, nil)
			recorder := httptest.NewRecorder()
			handler.GetTask(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp TaskResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, testTaskID, resp.ID)
				assert.Equal(t, "Found", resp.Title)
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		taskID         string
		payload        string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "successful update",
			taskID:         testTaskID,
			payload:        `{"title":"Updated","status":"completed","priority":"low"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing task",
			taskID:         "ffffffffffffffffffffffff",
			payload:        `{"title":"Ghost"}`,
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed ID",
			taskID:         "not-an-object-id",
			payload:        `{"title":"Bad ID"}`,
			serviceError:   domain.ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid payload",
			taskID:         testTaskID,
			payload:        `{"title":""}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *domain.Task
			mockService := &mockTaskService{
				updateFn: func(ctx context.Context, task *domain.Task) error {
					captured = task
					return tt.serviceError
				},
			}

			handler := NewTaskHandler(mockService)

			req := newTaskRequest("PUT", "/tasks/"+tt.taskID, tt.taskID, []byte(tt.payload))
			recorder := httptest.NewRecorder()
			handler.UpdateTask(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Task updated", resp.Message)

				// The path ID wins over anything in the body
				require.NotNil(t, captured)
				assert.Equal(t, tt.taskID, captured.ID)
				assert.Equal(t, domain.StatusCompleted, captured.Status)
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		taskID         string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "successful delete",
			taskID:         testTaskID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing task",
			taskID:         "ffffffffffffffffffffffff",
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed ID",
			taskID:         "not-an-object-id",
			serviceError:   domain.ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockTaskService{
				deleteFn: func(ctx context.Context, id string) error {
					assert.Equal(t, tt.taskID, id)
					return tt.serviceError
				},
			}

			handler := NewTaskHandler(mockService)

			req := newTaskRequest("DELETE", "/tasks/"+tt.taskID, tt.taskID, nil)
			recorder := httptest.NewRecorder()
			handler.DeleteTask(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Task deleted", resp.Message)
			}
		})
	}
}
