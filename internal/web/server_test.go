// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"formscan/internal/engine"
	"formscan/internal/findings"
	"formscan/internal/registry"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg := registry.MustLoad()
	enabled, err := engine.ParseCategories("all")
	if err != nil {
		t.Fatal(err)
	}
	return NewServer("8080", engine.New(reg, engine.BuildRuleSets(enabled), nil))
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
	if body["forms"].(float64) <= 0 {
		t.Errorf("forms count should be positive, got %v", body["forms"])
	}
}

func TestHandleForms(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Count int        `json:"count"`
		Forms []FormInfo `json:"forms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != len(body.Forms) || body.Count == 0 {
		t.Fatalf("count = %d, forms = %d", body.Count, len(body.Forms))
	}
	found := false
	for _, f := range body.Forms {
		if f.FormNumber == "47" {
			found = true
			if f.Category != "proposal" {
				t.Errorf("form 47 category = %q, want proposal", f.Category)
			}
		}
	}
	if !found {
		t.Error("form 47 missing from listing")
	}
}

func TestHandleAnalyze(t *testing.T) {
	srv := testServer(t)

	payload := `{"document_text": "Form 79\nDebtor Name: Alice Carter\nTotal Assets: $50,000.00"}`
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var result findings.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.FormNumber != "79" {
		t.Errorf("form number = %q, want 79", result.FormNumber)
	}
	if result.ValidationErrors == nil || result.Risks == nil {
		t.Error("result slices must not be null in JSON output")
	}
}

func TestHandleAnalyze_BadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"invalid json", "{"},
		{"missing text", `{"form_number_hint": "47"}`},
		{"unknown format", `{"document_text": "Form 79", "format": "sarif"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleAnalyze_FormattedExport(t *testing.T) {
	srv := testServer(t)

	payload := `{"document_text": "Form 79\nDebtor Name: Alice Carter", "format": "csv"}`
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "formscan-result.csv") {
		t.Errorf("content disposition = %q", rec.Header().Get("Content-Disposition"))
	}
}
