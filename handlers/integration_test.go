// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/client"
	"github.com/danielhkuo/makeurownmenu/form"
	"github.com/danielhkuo/makeurownmenu/store"
	"github.com/danielhkuo/makeurownmenu/testutil"
)

func newTestServer(t *testing.T, st store.Store) *httptest.Server {
	t.Helper()

	cfg := testutil.GetTestConfig()
	submissionHandler := NewSubmissionHandler(st, cfg)
	statsHandler := NewStatsHandler(st, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/submit", submissionHandler.Submit)
	mux.HandleFunc("GET /submissions", submissionHandler.ListSubmissions)
	mux.HandleFunc("GET /stats", statsHandler.GetStats)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestFullSubmissionWorkflow tests the complete end-to-end workflow:
// 1. Fill in user details
// 2. Try to submit early and get told which meal is pending
// 3. Fill every day and meal
// 4. Submit through the HTTP client
// 5. Read the submission back, filtered by email
// 6. Check the dashboard stats
func TestFullSubmissionWorkflow(t *testing.T) {
	st := testutil.SetupTestStore(t)
	srv := newTestServer(t, st)
	api := client.New(srv.URL, srv.Client())
	ctx := context.Background()

	// Step 1: User details
	f := form.New()
	f.SetUserField("name", "Asha")
	f.SetUserField("email", "asha@hostel.test")
	f.SetUserField("room", "B-204")

	// Step 2: Early submit is rejected before any request is made
	f.SetFeedback("Monday", "Breakfast", "suggestion", "Poha")
	_, err := f.Submit(ctx, api)
	var incomplete *form.IncompleteMenuFeedbackError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Step 2 - Expected IncompleteMenuFeedbackError, got %v", err)
	}
	if incomplete.Day != "Monday" || incomplete.Meal != "Breakfast" {
		t.Errorf("Step 2 - Expected Monday Breakfast pending, got %s %s", incomplete.Day, incomplete.Meal)
	}

	// Step 3: Fill everything
	for _, day := range catalog.Days {
		for _, meal := range catalog.Meals {
			f.SetFeedback(day, meal, "suggestion", meal+" special")
			f.SetFeedback(day, meal, "opinion", "Tasty but cold")
		}
	}
	if filled, total := f.Progress(); filled != total {
		t.Fatalf("Step 3 - Expected all %d entries filled, got %d", total, filled)
	}

	// Step 4: Submit
	id, err := f.Submit(ctx, api)
	if err != nil {
		t.Fatalf("Step 4 - Submit failed: %v", err)
	}
	if id == "" {
		t.Fatal("Step 4 - Missing inserted ID")
	}
	t.Logf("Step 4 - Created submission: %s", id)

	// Another resident submits too
	testutil.CreateTestSubmission(t, st, testutil.TestUser("ravi"), "Dosa", "Crispy")

	// Step 5: Read back
	subs, err := api.List(ctx, "asha@hostel.test")
	if err != nil {
		t.Fatalf("Step 5 - List failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Step 5 - Expected 1 submission for asha, got %d", len(subs))
	}
	if subs[0].ID != id || subs[0].Room != "B-204" {
		t.Errorf("Step 5 - Unexpected submission %+v", subs[0])
	}
	if got := subs[0].MenuFeedback["Thursday"]["Snacks"].Suggestion; got != "Snacks special" {
		t.Errorf("Step 5 - Expected 'Snacks special', got '%s'", got)
	}
	if subs[0].CreatedAt.IsZero() {
		t.Error("Step 5 - Expected created_at to be set")
	}

	all, err := api.List(ctx, "")
	if err != nil {
		t.Fatalf("Step 5 - List all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Step 5 - Expected 2 submissions, got %d", len(all))
	}
	if all[1].ID != id {
		t.Errorf("Step 5 - Expected asha's submission to be older, got order %s, %s", all[0].ID, all[1].ID)
	}

	// Step 6: Stats
	stats, err := api.Stats(ctx, "")
	if err != nil {
		t.Fatalf("Step 6 - Stats failed: %v", err)
	}
	if stats.TotalSubmissions != 2 {
		t.Errorf("Step 6 - Expected 2 submissions, got %d", stats.TotalSubmissions)
	}
	dinner := stats.MealSuggestions["Dinner"]
	if len(dinner) != 2 || dinner[0].Count != 7 {
		t.Errorf("Step 6 - Unexpected dinner suggestions %+v", dinner)
	}
	if stats.MostActiveUser == nil || stats.MostActiveUser.Count != 1 {
		t.Errorf("Step 6 - Unexpected most active user %+v", stats.MostActiveUser)
	}
}

func TestSubmitWorkflow_ServerError(t *testing.T) {
	srv := newTestServer(t, failingStore{})
	api := client.New(srv.URL, srv.Client())

	f := form.New()
	f.SetUserField("name", "Asha")
	f.SetUserField("email", "asha@hostel.test")
	f.SetUserField("room", "B-204")
	for _, day := range catalog.Days {
		for _, meal := range catalog.Meals {
			f.SetFeedback(day, meal, "suggestion", "Anything")
			f.SetFeedback(day, meal, "opinion", "Fine")
		}
	}

	_, err := f.Submit(context.Background(), api)

	var submitErr *form.SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("Expected SubmitError, got %v", err)
	}
	if submitErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", submitErr.StatusCode)
	}
	if submitErr.Message == form.DefaultSubmitMessage {
		t.Error("Expected the server's error message, got the default")
	}
}
