package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/task-api/internal/api/handler"
	"github.com/taskhive/task-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"throttled", domain.ErrLoginThrottled, http.StatusTooManyRequests, "Too many login attempts, try again later"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusBadRequest, "Invalid token"},
		{"user gone", domain.ErrUserNotFound, http.StatusUnauthorized, "Invalid token"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
		{"not owner", domain.ErrNotTaskOwner, http.StatusUnauthorized, "Not authorized"},
		{"unexpected", errors.New("mongo exploded"), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := render(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, body["message"])
			}
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	err := &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "priority", Message: "priority must be one of: High Medium Low"},
	}}

	rec, body := render(t, err)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	fields, ok := body["errors"].([]any)
	if !ok {
		t.Fatalf("expected errors list, got %+v", body)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fields))
	}
	first, _ := fields[0].(map[string]any)
	if first["field"] != "title" {
		t.Fatalf("unexpected first field error: %+v", first)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "Access denied"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["message"] != "Access denied" {
		t.Fatalf("expected Access denied, got %v", body["message"])
	}
}

func TestErrorHandler_ServerErrorHidesDetail(t *testing.T) {
	_, body := render(t, errors.New("connection string with password leaked"))
	if body["message"] == "connection string with password leaked" {
		t.Fatalf("internal error detail must not reach the client")
	}
}
