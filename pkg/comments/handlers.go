// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comments

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
	mux.Get("/api/v0/tasks/{taskId}/comments", a.listComments)
	mux.Post("/api/v0/tasks/{taskId}/comments", a.createComment)
	mux.Patch("/api/v0/comments/{id}", a.updateComment)
	mux.Delete("/api/v0/comments/{id}", a.deleteComment)
}

type commentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type commentRequest struct {
	Body string `json:"body" validate:"required"`
}

func (a *API) listComments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "comments.API.listComments")
	defer span.End()

	comments, err := a.service.ListComments(ctx, chi.URLParam(r, "taskId"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	resp := make([]commentResponse, len(comments))
	for i, c := range comments {
		resp[i] = newCommentResponse(c)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) createComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "comments.API.createComment")
	defer span.End()

	req, ok := a.decodeBody(w, r)
	if !ok {
		return
	}

	comment, err := a.service.CreateComment(ctx, chi.URLParam(r, "taskId"), req.Body)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusCreated, newCommentResponse(comment))
}

func (a *API) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "comments.API.updateComment")
	defer span.End()

	req, ok := a.decodeBody(w, r)
	if !ok {
		return
	}

	comment, err := a.service.UpdateComment(ctx, chi.URLParam(r, "id"), req.Body)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newCommentResponse(comment))
}

func (a *API) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "comments.API.deleteComment")
	defer span.End()

	if err := a.service.DeleteComment(ctx, chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeBody(w http.ResponseWriter, r *http.Request) (commentRequest, bool) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return req, false
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return req, false
	}
	return req, true
}

func newCommentResponse(c *types.TaskComment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Body:      c.Body,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
