// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/makeurownmenu/models"
	"github.com/danielhkuo/makeurownmenu/store"
	"github.com/danielhkuo/makeurownmenu/testutil"
)

// failingStore fails every call with a storage error
type failingStore struct{}

func (failingStore) Create(ctx context.Context, user models.User, feedback models.MenuFeedback) (string, error) {
	return "", fmt.Errorf("%w: failed to insert submission: disk full", store.ErrStorage)
}

func (failingStore) List(ctx context.Context, email string) ([]models.Submission, error) {
	return nil, fmt.Errorf("%w: failed to query submissions: disk full", store.ErrStorage)
}

func (failingStore) Close(ctx context.Context) error {
	return nil
}

func TestSubmit_Success(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewSubmissionHandler(st, testutil.GetTestConfig())

	user := testutil.TestUser("asha")
	reqBody := models.SubmitRequest{
		User:         &user,
		MenuFeedback: testutil.FullMenuFeedback("Paneer", "Too oily"),
	}

	req := testutil.MakeRequest("POST", "/submit", reqBody, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Success {
		t.Error("Expected success true")
	}
	if resp.InsertedID == "" {
		t.Error("Expected non-empty insertedId")
	}

	subs, err := st.List(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 stored submission, got %d", len(subs))
	}
	if subs[0].ID != resp.InsertedID {
		t.Errorf("Expected stored ID %s, got %s", resp.InsertedID, subs[0].ID)
	}
	if subs[0].Room != "A-101" {
		t.Errorf("Expected room A-101, got %s", subs[0].Room)
	}
	if subs[0].MenuFeedback["Sunday"]["Dinner"].Opinion != "Too oily" {
		t.Errorf("Expected feedback to round-trip, got %+v", subs[0].MenuFeedback["Sunday"]["Dinner"])
	}
}

func TestSubmit_Validation(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewSubmissionHandler(st, testutil.GetTestConfig())

	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{"MissingUser", `{"menuFeedback": {}}`, MissingFieldsMessage},
		{"MissingMenuFeedback", `{"user": {"name": "A", "email": "a@x.com", "room": "1"}}`, MissingFieldsMessage},
		{"NullUser", `{"user": null, "menuFeedback": {}}`, MissingFieldsMessage},
		{"NullMenuFeedback", `{"user": {"name": "A"}, "menuFeedback": null}`, MissingFieldsMessage},
		{"EmptyObject", `{}`, MissingFieldsMessage},
		{"InvalidJSON", `{"user": `, "Invalid JSON"},
		{"WrongShape", `{"user": "asha", "menuFeedback": {}}`, "Invalid JSON"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/submit", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tc.expected {
				t.Errorf("Expected error '%s', got '%s'", tc.expected, resp.Error)
			}
		})
	}

	subs, err := st.List(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("Expected nothing stored after rejected requests, got %d", len(subs))
	}
}

func TestSubmit_EmptyFeedbackAccepted(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewSubmissionHandler(st, testutil.GetTestConfig())

	// The server only checks presence; completeness is the form's job
	req := httptest.NewRequest("POST", "/submit", strings.NewReader(`{"user": {"name": "", "email": "", "room": ""}, "menuFeedback": {}}`))
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestSubmit_StorageFailure(t *testing.T) {
	handler := NewSubmissionHandler(failingStore{}, testutil.GetTestConfig())

	user := testutil.TestUser("asha")
	req := testutil.MakeRequest("POST", "/submit", models.SubmitRequest{
		User:         &user,
		MenuFeedback: testutil.FullMenuFeedback("Paneer", "Fine"),
	}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Error, "disk full") {
		t.Errorf("Expected storage message in error, got '%s'", resp.Error)
	}
}

func TestListSubmissions(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewSubmissionHandler(st, testutil.GetTestConfig())

	first := testutil.CreateTestSubmission(t, st, testutil.TestUser("asha"), "Idli", "Soft")
	second := testutil.CreateTestSubmission(t, st, testutil.TestUser("ravi"), "Dosa", "Crisp")
	third := testutil.CreateTestSubmission(t, st, testutil.TestUser("asha"), "Upma", "Bland")

	t.Run("All", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/submissions", nil)
		w := httptest.NewRecorder()

		handler.ListSubmissions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var subs []models.Submission
		testutil.AssertJSON(t, w, &subs)

		if len(subs) != 3 {
			t.Fatalf("Expected 3 submissions, got %d", len(subs))
		}
		// Newest first
		expected := []string{third, second, first}
		for i, id := range expected {
			if subs[i].ID != id {
				t.Errorf("Position %d: expected %s, got %s", i, id, subs[i].ID)
			}
		}
	})

	t.Run("FilteredByEmail", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/submissions?email=asha@hostel.test", nil)
		w := httptest.NewRecorder()

		handler.ListSubmissions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var subs []models.Submission
		testutil.AssertJSON(t, w, &subs)

		if len(subs) != 2 {
			t.Fatalf("Expected 2 submissions, got %d", len(subs))
		}
		for _, sub := range subs {
			if sub.Email != "asha@hostel.test" {
				t.Errorf("Unexpected email %s in filtered list", sub.Email)
			}
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/submissions?email=nobody@hostel.test", nil)
		w := httptest.NewRecorder()

		handler.ListSubmissions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected empty JSON array, got %s", body)
		}
	})
}

func TestListSubmissions_StorageFailure(t *testing.T) {
	handler := NewSubmissionHandler(failingStore{}, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/submissions", nil)
	w := httptest.NewRecorder()

	handler.ListSubmissions(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error == "" {
		t.Error("Expected error message")
	}
}
