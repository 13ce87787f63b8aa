package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"mathgames/internal/service"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", "", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Teapot" {
		t.Fatalf("expected error 'Teapot', got %q", body["error"])
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, "Error interno del servidor", "", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Error interno del servidor") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantField  string
	}{
		{
			name:       "missing fields",
			err:        &service.MissingFieldsError{Fields: []string{"userId", "score"}},
			wantStatus: 400,
			wantError:  "Faltan datos requeridos",
			wantField:  "required",
		},
		{
			name:       "invalid category",
			err:        &service.InvalidCategoryError{Category: "Historia", Valid: []string{"Aritmética"}},
			wantStatus: 400,
			wantError:  "Categoría inválida",
			wantField:  "validCategories",
		},
		{
			name:       "not found",
			err:        service.ErrNotFound,
			wantStatus: 404,
			wantError:  "No encontrado",
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: 500,
			wantError:  "Error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			respondWithServiceError(recorder, tt.err, "test")

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, recorder.Code)
			}

			var body map[string]interface{}
			if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, body["error"])
			}
			if tt.wantField != "" {
				if _, ok := body[tt.wantField]; !ok {
					t.Errorf("expected body to include %q, got %v", tt.wantField, body)
				}
			}
		})
	}
}
