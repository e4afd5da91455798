// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/portaldesk/portal-service/internal/audit"
	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/db"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/pkg/authentication"
	"github.com/portaldesk/portal-service/pkg/clients"
	"github.com/portaldesk/portal-service/pkg/comments"
	"github.com/portaldesk/portal-service/pkg/metrics"
	"github.com/portaldesk/portal-service/pkg/notes"
	"github.com/portaldesk/portal-service/pkg/status"
	"github.com/portaldesk/portal-service/pkg/tasks"
	"github.com/portaldesk/portal-service/pkg/tenants"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	authz authorization.AuthorizerInterface,
	recorder audit.RecorderInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Everything below requires an authenticated principal.
	apiRouter := chi.NewMux()
	apiRouter.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())

	tenantsAPI := tenants.NewAPI(
		tenants.NewService(s, authz, recorder, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	clientsAPI := clients.NewAPI(
		clients.NewService(s, authz, recorder, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	tasksAPI := tasks.NewAPI(
		tasks.NewService(s, authz, recorder, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	notesAPI := notes.NewAPI(
		notes.NewService(s, authz, recorder, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	commentsAPI := comments.NewAPI(
		comments.NewService(s, authz, recorder, tracer, monitor, logger),
		tracer, monitor, logger,
	)

	tenantsAPI.RegisterEndpoints(apiRouter)
	clientsAPI.RegisterEndpoints(apiRouter)
	tasksAPI.RegisterEndpoints(apiRouter)
	notesAPI.RegisterEndpoints(apiRouter)
	commentsAPI.RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
