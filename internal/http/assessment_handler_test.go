package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybench/internal/domain"
	"psybench/internal/llm"
	"psybench/internal/service"
)

func newAssessmentRouter(client llm.LLMClient) (*gin.Engine, *service.AssessmentService) {
	gin.SetMode(gin.TestMode)
	sampler := service.NewSampler(client, nil, 1, 5, 1.0)
	svc := service.NewAssessmentService(sampler, nil, service.NewMemoryRunStatusStore(time.Minute), zap.NewNop())
	h := NewAssessmentHandler(zap.NewNop(), svc, nil)

	r := gin.New()
	r.POST("/assessments", h.StartAssessment)
	r.GET("/assessments/:id", h.GetRunStatus)
	r.GET("/profiles/:id", h.GetProfile)
	return r, svc
}

func TestStartAssessment_AcceptsAndTracksRun(t *testing.T) {
	r, _ := newAssessmentRouter(&llm.MockClient{Response: "3"})

	body, _ := json.Marshal(map[string]any{
		"model_name":  "test-model",
		"inventories": []string{"disc"},
	})
	req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Fatalf("expected run id in response")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		req := httptest.NewRequest(http.MethodGet, "/assessments/"+resp.RunID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for run status, got %d", rec.Code)
		}

		var status domain.RunStatus
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		if status.Status == domain.RunStatusCompleted {
			if status.Profile == nil {
				t.Fatalf("completed status should include the profile")
			}
			return
		}
		if status.Status == domain.RunStatusFailed {
			t.Fatalf("run failed: %s", status.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("run did not complete, last status %q", status.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartAssessment_RejectsUnknownInventory(t *testing.T) {
	r, _ := newAssessmentRouter(&llm.MockClient{Response: "3"})

	body, _ := json.Marshal(map[string]any{
		"model_name":  "test-model",
		"inventories": []string{"phrenology"},
	})
	req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetRunStatus_UnknownRunIs404(t *testing.T) {
	r, _ := newAssessmentRouter(&llm.MockClient{Response: "3"})

	req := httptest.NewRequest(http.MethodGet, "/assessments/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetProfile_WithoutPersistenceIs503(t *testing.T) {
	r, _ := newAssessmentRouter(&llm.MockClient{Response: "3"})

	req := httptest.NewRequest(http.MethodGet, "/profiles/some-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
