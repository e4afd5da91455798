// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tasks

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/portaldesk/portal-service/internal/httperr"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tasks", a.listTasks)
	mux.Post("/api/v0/tasks", a.createTask)
	mux.Get("/api/v0/tasks/{id}", a.getTask)
	mux.Patch("/api/v0/tasks/{id}", a.updateTask)
	mux.Delete("/api/v0/tasks/{id}", a.deleteTask)
	mux.Get("/api/v0/tenants/{tenantId}/tasks", a.listTenantTasks)
}

type taskResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	ClientID     *string   `json:"client_id,omitempty"`
	AssigneeType string    `json:"assignee_type"`
	AssigneeID   string    `json:"assignee_id"`
	Status       string    `json:"status"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type createTaskRequest struct {
	TenantID     string `json:"tenant_id"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	AssigneeType string `json:"assignee_type" validate:"omitempty,oneof=tenant client"`
	AssigneeID   string `json:"assignee_id" validate:"required_if=AssigneeType client"`
}

type updateTaskRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	AssigneeType *string `json:"assignee_type" validate:"omitempty,oneof=tenant client"`
	AssigneeID   *string `json:"assignee_id"`
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.listTasks")
	defer span.End()

	tasks, err := a.service.ListTasks(ctx)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTaskResponses(tasks))
}

func (a *API) listTenantTasks(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.listTenantTasks")
	defer span.End()

	tasks, err := a.service.ListTenantTasks(ctx, chi.URLParam(r, "tenantId"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTaskResponses(tasks))
}

func (a *API) getTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.getTask")
	defer span.End()

	task, err := a.service.GetTask(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTaskResponse(task))
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.createTask")
	defer span.End()

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	task := &types.Task{
		TenantID:     req.TenantID,
		Title:        req.Title,
		Description:  req.Description,
		AssigneeType: types.AssigneeType(req.AssigneeType),
		AssigneeID:   req.AssigneeID,
	}

	created, err := a.service.CreateTask(ctx, task)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusCreated, newTaskResponse(created))
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.updateTask")
	defer span.End()

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	update := &types.Task{}
	var paths []string
	if req.Title != nil {
		update.Title = *req.Title
		paths = append(paths, "title")
	}
	if req.Description != nil {
		update.Description = *req.Description
		paths = append(paths, "description")
	}
	if req.Status != nil {
		update.Status = types.TaskStatus(*req.Status)
		paths = append(paths, "status")
	}
	if req.AssigneeType != nil {
		update.AssigneeType = types.AssigneeType(*req.AssigneeType)
		paths = append(paths, "assignee_type")
	}
	if req.AssigneeID != nil {
		update.AssigneeID = *req.AssigneeID
		paths = append(paths, "assignee_id")
	}
	if len(paths) == 0 {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "no fields to update", a.logger)
		return
	}

	task, err := a.service.UpdateTask(ctx, chi.URLParam(r, "id"), update, paths)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTaskResponse(task))
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tasks.API.deleteTask")
	defer span.End()

	if err := a.service.DeleteTask(ctx, chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newTaskResponse(t *types.Task) taskResponse {
	return taskResponse{
		ID:           t.ID,
		TenantID:     t.TenantID,
		ClientID:     t.ClientID,
		AssigneeType: string(t.AssigneeType),
		AssigneeID:   t.AssigneeID,
		Status:       string(t.Status),
		Title:        t.Title,
		Description:  t.Description,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func newTaskResponses(tasks []*types.Task) []taskResponse {
	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = newTaskResponse(t)
	}
	return resp
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
