// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"encoding/json"
	"errors"
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
	mux.Get("/api/v0/notes", a.listNotes)
	mux.Post("/api/v0/notes", a.createNote)
	mux.Get("/api/v0/notes/{id}", a.getNote)
	mux.Patch("/api/v0/notes/{id}", a.updateNote)
	mux.Delete("/api/v0/notes/{id}", a.deleteNote)
	mux.Get("/api/v0/notes/{id}/attachments", a.listAttachments)
	mux.Post("/api/v0/notes/{id}/attachments", a.addAttachment)
	mux.Get("/api/v0/tenants/{tenantId}/notes", a.listTenantNotes)
}

type noteResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	ClientID  *string   `json:"client_id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type attachmentResponse struct {
	ID          string    `json:"id"`
	NoteID      string    `json:"note_id"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type createNoteRequest struct {
	TenantID string  `json:"tenant_id"`
	ClientID *string `json:"client_id"`
	Title    string  `json:"title" validate:"required"`
	Body     string  `json:"body"`
}

type updateNoteRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type addAttachmentRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,gt=0"`
	ContentType string `json:"content_type"`
}

func (a *API) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.listNotes")
	defer span.End()

	notes, err := a.service.ListNotes(ctx)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newNoteResponses(notes))
}

func (a *API) listTenantNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.listTenantNotes")
	defer span.End()

	notes, err := a.service.ListTenantNotes(ctx, chi.URLParam(r, "tenantId"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newNoteResponses(notes))
}

func (a *API) getNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.getNote")
	defer span.End()

	note, err := a.service.GetNote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newNoteResponse(note))
}

func (a *API) createNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.createNote")
	defer span.End()

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	note := &types.MeetingNote{
		TenantID: req.TenantID,
		ClientID: req.ClientID,
		Title:    req.Title,
		Body:     req.Body,
	}

	created, err := a.service.CreateNote(ctx, note)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusCreated, newNoteResponse(created))
}

func (a *API) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.updateNote")
	defer span.End()

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}

	update := &types.MeetingNote{}
	var paths []string
	if req.Title != nil {
		update.Title = *req.Title
		paths = append(paths, "title")
	}
	if req.Body != nil {
		update.Body = *req.Body
		paths = append(paths, "body")
	}
	if len(paths) == 0 {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "no fields to update", a.logger)
		return
	}

	note, err := a.service.UpdateNote(ctx, chi.URLParam(r, "id"), update, paths)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newNoteResponse(note))
}

func (a *API) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.deleteNote")
	defer span.End()

	if err := a.service.DeleteNote(ctx, chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listAttachments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.listAttachments")
	defer span.End()

	attachments, err := a.service.ListAttachments(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	resp := make([]attachmentResponse, len(attachments))
	for i, att := range attachments {
		resp[i] = newAttachmentResponse(att)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) addAttachment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.addAttachment")
	defer span.End()

	var req addAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	attachment := &types.NoteAttachment{
		FileName:    req.FileName,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
	}

	created, err := a.service.AddAttachment(ctx, chi.URLParam(r, "id"), attachment)
	if err != nil {
		switch {
		case errors.Is(err, ErrAttachmentTooLarge):
			httperr.WriteErrorMessage(w, http.StatusRequestEntityTooLarge, err.Error(), a.logger)
		case errors.Is(err, ErrAttachmentLimit):
			httperr.WriteErrorMessage(w, http.StatusUnprocessableEntity, err.Error(), a.logger)
		default:
			httperr.WriteError(w, err, a.logger)
		}
		return
	}

	a.writeJSON(w, http.StatusCreated, newAttachmentResponse(created))
}

func newNoteResponse(n *types.MeetingNote) noteResponse {
	return noteResponse{
		ID:        n.ID,
		TenantID:  n.TenantID,
		ClientID:  n.ClientID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func newNoteResponses(notes []*types.MeetingNote) []noteResponse {
	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = newNoteResponse(n)
	}
	return resp
}

func newAttachmentResponse(a *types.NoteAttachment) attachmentResponse {
	return attachmentResponse{
		ID:          a.ID,
		NoteID:      a.NoteID,
		FileName:    a.FileName,
		SizeBytes:   a.SizeBytes,
		ContentType: a.ContentType,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
