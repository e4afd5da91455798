// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package httperr maps service errors onto the JSON error envelope shared
// by every API in this service.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/storage"
)

type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFor translates a service error into an HTTP status code.
// Unknown errors map to 500.
func StatusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, authorization.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, authorization.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as the standard envelope. Internal errors are
// logged and replaced with a generic message so details never leak to
// clients.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Errorf("internal error: %v", err)
		message = "internal server error"
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message = validationMessage(validationErrs)
	}

	WriteErrorMessage(w, status, message, logger)
}

// WriteErrorMessage renders the envelope with an explicit status and message.
func WriteErrorMessage(w http.ResponseWriter, status int, message string, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Status: status, Message: message}); err != nil {
		logger.Errorf("failed to encode error response: %v", err)
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		parts = append(parts, "invalid field "+fieldErr.Field())
	}

	return strings.Join(parts, ", ")
}
