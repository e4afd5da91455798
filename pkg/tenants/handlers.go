// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

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
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Patch("/api/v0/tenants/{id}", a.updateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)
}

type tenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type createTenantRequest struct {
	Name       string `json:"name" validate:"required"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

type updateTenantRequest struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.listTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	resp := make([]tenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = newTenantResponse(t)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.getTenant")
	defer span.End()

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTenantResponse(tenant))
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.createTenant")
	defer span.End()

	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	tenant, err := a.service.CreateTenant(ctx, req.Name, req.AdminEmail)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusCreated, newTenantResponse(tenant))
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.updateTenant")
	defer span.End()

	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body", a.logger)
		return
	}

	update := &types.Tenant{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Enabled != nil {
		update.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}
	if len(paths) == 0 {
		httperr.WriteErrorMessage(w, http.StatusBadRequest, "no fields to update", a.logger)
		return
	}

	tenant, err := a.service.UpdateTenant(ctx, update, paths)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, newTenantResponse(tenant))
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.deleteTenant")
	defer span.End()

	if err := a.service.DeleteTenant(ctx, chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newTenantResponse(t *types.Tenant) tenantResponse {
	return tenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Enabled:   t.Enabled,
		CreatedAt: t.CreatedAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
