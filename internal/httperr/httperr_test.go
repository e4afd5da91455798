// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/storage"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthenticated", authorization.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", authorization.ErrForbidden, http.StatusForbidden},
		{"wrapped forbidden", fmt.Errorf("%w: only the author can edit a note", authorization.ErrForbidden), http.StatusForbidden},
		{"not found", storage.ErrNotFound, http.StatusNotFound},
		{"duplicate", storage.ErrDuplicateKey, http.StatusConflict},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "domain errors keep their message",
			err:             fmt.Errorf("%w: not a member of this tenant", authorization.ErrForbidden),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "forbidden: not a member of this tenant",
		},
		{
			name:            "internal errors are masked",
			err:             errors.New("pq: connection reset by peer"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			WriteError(rr, tc.err, logging.NewNoopLogger())

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			var resp Response
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if resp.Status != tc.expectedStatus {
				t.Errorf("expected envelope status %d, got %d", tc.expectedStatus, resp.Status)
			}
			if resp.Message != tc.expectedMessage {
				t.Errorf("expected message %q, got %q", tc.expectedMessage, resp.Message)
			}
		})
	}
}

func TestWriteErrorValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := validate.Struct(payload{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	rr := httptest.NewRecorder()
	WriteError(rr, err, logging.NewNoopLogger())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "invalid field Name, invalid field Email" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}
