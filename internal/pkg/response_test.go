package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/query"
)

func TestSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, "created", map[string]string{"id": "x"})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["statusCode"] != float64(http.StatusCreated) {
		t.Errorf("statusCode = %v; want 201", body["statusCode"])
	}
	if body["success"] != true {
		t.Errorf("success = %v; want true", body["success"])
	}
	if body["message"] != "created" {
		t.Errorf("message = %v; want created", body["message"])
	}
	if _, ok := body["meta"]; ok {
		t.Error("meta must be omitted on non-list responses")
	}
	if body["data"] == nil {
		t.Error("data missing")
	}
}

func TestList_IncludesMeta(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	result := &query.PagedResult[string]{
		Meta: query.Meta{Total: 42, Page: 2, Limit: 10},
		Data: []string{"a", "b"},
	}
	List(c, "fetched", result)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	meta, ok := body["meta"].(map[string]any)
	if !ok {
		t.Fatal("meta missing on list response")
	}
	if meta["total"] != float64(42) || meta["page"] != float64(2) || meta["limit"] != float64(10) {
		t.Errorf("meta = %v; want total 42 page 2 limit 10", meta)
	}
	if len(meta) != 3 {
		t.Errorf("meta has %d fields; want exactly total, page, limit", len(meta))
	}

	data, ok := body["data"].([]any)
	if !ok || len(data) != 2 {
		t.Errorf("data = %v; want two rows", body["data"])
	}
}

func TestList_EmptyPageKeepsDataArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List(c, "fetched", &query.PagedResult[string]{
		Meta: query.Meta{Total: 0, Page: 1, Limit: 10},
		Data: []string{},
	})

	body := strings.TrimSpace(w.Body.String())
	if !strings.Contains(body, `"data":[]`) {
		t.Errorf("empty page must serialize data as [], got %s", body)
	}
}

func TestError_MapsDomainCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"validation", domain.NewAppError(domain.CodeValidation, "invalid semester code", nil), http.StatusBadRequest, "invalid semester code"},
		{"conflict", domain.NewAppError(domain.CodeConflict, "there is already an ongoing enrollment", nil), http.StatusConflict, "there is already an ongoing enrollment"},
		{"plain error hides detail", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d", w.Code, tt.wantStatus)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["success"] != false {
				t.Errorf("success = %v; want false", body["success"])
			}
			if body["message"] != tt.wantMsg {
				t.Errorf("message = %v; want %q", body["message"], tt.wantMsg)
			}
			if body["data"] != nil {
				t.Errorf("data = %v; want null", body["data"])
			}
		})
	}
}

func TestBindAndValidate_UsesJSONTagNames(t *testing.T) {
	type createReq struct {
		Title string `json:"title" binding:"required"`
		Year  int    `json:"year" binding:"required,min=1900"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"year": 10}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req createReq
	if BindAndValidate(c, &req) {
		t.Fatal("expected binding to fail")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := body.Errors["title"]; !ok {
		t.Errorf("errors = %v; want json tag name 'title'", body.Errors)
	}
	if _, ok := body.Errors["year"]; !ok {
		t.Errorf("errors = %v; want json tag name 'year'", body.Errors)
	}
}
