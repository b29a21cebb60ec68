package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
)

func postResult(t *testing.T, h *ResultHandler, req models.CreateResultRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(req)
	r := httptest.NewRequest(http.MethodPost, "/api/results", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	return rr
}

func TestResultHandler_Create(t *testing.T) {
	st := newTestStore(t)
	h := NewResultHandler(st)

	rr := postResult(t, h, models.CreateResultRequest{
		StudentName:    "Ann",
		Score:          3,
		TotalQuestions: 4,
		Answers: []models.Answer{
			{QuestionID: "q1", Answer: "Paris", Correct: true, TimeSpent: 10},
		},
		Timestamp: time.Now().UnixMilli(),
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created models.Result
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated result id")
	}
	if created.Percentage != 75 {
		t.Errorf("expected percentage 75, got %v", created.Percentage)
	}
	if !created.Completed {
		t.Error("expected completed to default to true")
	}
}

func TestResultHandler_Create_ValidationFailures(t *testing.T) {
	st := newTestStore(t)
	h := NewResultHandler(st)

	tests := []struct {
		name string
		req  models.CreateResultRequest
	}{
		{"missing student name", models.CreateResultRequest{Score: 1, TotalQuestions: 2}},
		{"zero total questions", models.CreateResultRequest{StudentName: "Ann", Score: 0, TotalQuestions: 0}},
		{"score above total", models.CreateResultRequest{StudentName: "Ann", Score: 5, TotalQuestions: 4}},
		{"negative score", models.CreateResultRequest{StudentName: "Ann", Score: -1, TotalQuestions: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postResult(t, h, tc.req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rr.Code)
			}
		})
	}
}

// Submitting a result must be visible in the result stats immediately
// afterwards.
func TestResultHandler_SubmitThenStats(t *testing.T) {
	st := newTestStore(t)
	h := NewResultHandler(st)

	statsFor := func() services.ResultStats {
		req := httptest.NewRequest(http.MethodGet, "/api/results/stats", nil)
		rr := httptest.NewRecorder()
		h.Stats(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("stats: expected status 200, got %d", rr.Code)
		}
		var stats services.ResultStats
		if err := json.NewDecoder(rr.Body).Decode(&stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		return stats
	}

	before := statsFor()

	rr := postResult(t, h, models.CreateResultRequest{
		StudentName:    "Ann",
		Score:          3,
		TotalQuestions: 4,
		Timestamp:      time.Now().UnixMilli(),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}

	after := statsFor()
	if after.TotalAttempts != before.TotalAttempts+1 {
		t.Errorf("expected totalAttempts %d, got %d", before.TotalAttempts+1, after.TotalAttempts)
	}

	wantAvg := (before.AverageScore*float64(before.TotalAttempts) + 3) / float64(after.TotalAttempts)
	if diff := after.AverageScore - wantAvg; diff > 0.001 || diff < -0.001 {
		t.Errorf("expected averageScore %v, got %v", wantAvg, after.AverageScore)
	}
}

func TestResultHandler_List_StartsEmpty(t *testing.T) {
	st := newTestStore(t)
	h := NewResultHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var results []models.Result
	if err := json.NewDecoder(rr.Body).Decode(&results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}
