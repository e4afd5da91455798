// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

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
	mux.Get("/api/v0/tenants/{tenantId}/clients", a.listClients)
	mux.Post("/api/v0/tenants/{tenantId}/clients", a.createClient)
	mux.Get("/api/v0/clients/{id}", a.getClient)
}

type clientResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	DisplayName  string    `json:"display_name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type createClientRequest struct {
	DisplayName  string `json:"display_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

func (a *API) listClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.listClients")
	defer span.End()

	profiles, err := a.service.ListClients(ctx, chi.URLParam(r, "tenantId"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	resp := make([]clientResponse, len(profiles))
	for i, c := range profiles {
		resp[i] = newClientResponse(c)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) getClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.getClient")
	defer span.End()

	profile, err := a.service.GetClient(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newClientResponse(profile))
}

func (a *API) createClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.createClient")
	defer span.End()

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	profile, err := a.service.CreateClient(ctx, chi.URLParam(r, "tenantId"), req.DisplayName, req.ContactEmail)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusCreated, newClientResponse(profile))
}

func newClientResponse(c *types.ClientProfile) clientResponse {
	return clientResponse{
		ID:           c.ID,
		TenantID:     c.TenantID,
		DisplayName:  c.DisplayName,
		ContactEmail: c.ContactEmail,
		CreatedAt:    c.CreatedAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
